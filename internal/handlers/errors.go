package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"bloghub/internal/models"
	"bloghub/internal/services"
)

var registerOnce sync.Once

// RegisterValidators настраивает валидатор gin: имена полей из json-тегов и правило "platform".
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return models.Platform(fl.Field().String()).Valid()
		})
	})
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min", "max":
		word := "at least"
		if fe.Tag() == "max" {
			word = "at most"
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be %s %s characters", word, fe.Param())
		}
		return fmt.Sprintf("must be %s %s", word, fe.Param())
	case "eqfield":
		return "must match " + lowerFirst(fe.Param())
	case "platform":
		return "must be one of Twitter, LinkedIn, Instagram, Facebook, GitHub"
	}
	return "is invalid"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// bindError превращает ошибку ShouldBind* в ValidationError.
func bindError(err error) *services.ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return &services.ValidationError{Fields: fields}
	}
	return services.NewValidationError("body", "malformed request body")
}

func respondValidation(c *gin.Context, verr *services.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation error.", "errors": verr.Fields})
}

type errorMapping struct {
	status int
	errs   []error
}

var errorTable = []errorMapping{
	{http.StatusNotFound, []error{services.ErrUserNotFound, services.ErrPostNotFound, services.ErrCommentNotFound}},
	{http.StatusUnauthorized, []error{services.ErrInvalidCredentials, services.ErrWrongPassword}},
	{http.StatusForbidden, []error{services.ErrNotVerified, services.ErrForbidden}},
	{http.StatusConflict, []error{
		services.ErrUserExists, services.ErrLinkExists, services.ErrAlreadyVerified,
		services.ErrTwoFactorAlreadyEnabled, services.ErrTwoFactorAlreadyDisabled,
	}},
	{http.StatusBadRequest, []error{
		services.ErrIncorrectOTP, services.ErrInvalidOTP, services.ErrOTPExpired,
		services.ErrEmailMismatch, services.ErrSamePrimaryEmail, services.ErrTwoFactorNotEnabled,
	}},
}

// statusFor returns the HTTP status and the client-safe message for err.
func statusFor(err error) (int, string) {
	for _, m := range errorTable {
		for _, target := range m.errs {
			if errors.Is(err, target) {
				return m.status, target.Error()
			}
		}
	}
	if errors.Is(err, services.ErrUpstream) {
		return http.StatusBadGateway, "upstream service failed"
	}
	return http.StatusInternalServerError, "internal server error"
}

// respondError: единая точка маппинга ошибок сервисов в HTTP.
func respondError(c *gin.Context, log logrus.FieldLogger, op string, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		respondValidation(c, verr)
		return
	}

	status, msg := statusFor(err)
	entry := log.WithError(err).WithField("status", status)
	if id, ok := c.Get("user_id"); ok {
		entry = entry.WithField("user_id", id)
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		entry.Errorf("%s failed", op)
	} else {
		entry.Debugf("%s rejected", op)
	}
	c.JSON(status, gin.H{"error": msg})
}
