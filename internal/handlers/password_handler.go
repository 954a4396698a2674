package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bloghub/internal/models"
	"bloghub/internal/services"
)

type PasswordHandler struct {
	reset services.PasswordResetService
	log   logrus.FieldLogger
}

func NewPasswordHandler(reset services.PasswordResetService, log logrus.FieldLogger) *PasswordHandler {
	return &PasswordHandler{reset: reset, log: log}
}

// @Summary   Запрос сброса пароля
// @Tags      Password
// @Security  BearerAuth
// @Success   200  {object}  map[string]string
// @Router    /password [post]
func (h *PasswordHandler) RequestReset(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	if err := h.reset.RequestReset(c.Request.Context(), userID); err != nil {
		respondError(c, h.log, "[password-reset][request]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset code sent"})
}

// @Summary   Сброс пароля по коду
// @Tags      Password
// @Security  BearerAuth
// @Param     body  body  models.PasswordResetRequest  true  "Code and new password"
// @Success   200  {object}  map[string]string
// @Failure   400  {object}  map[string]string
// @Router    /password/reset-password [post]
func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	var req models.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	if err := h.reset.ResetPassword(c.Request.Context(), userID, req.OTP, req.Password); err != nil {
		respondError(c, h.log, "[password-reset][reset]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
