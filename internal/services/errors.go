package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"bloghub/internal/authz"
)

var (
	// account
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account is not verified")
	ErrWrongPassword      = errors.New("wrong password")
	ErrAlreadyVerified    = errors.New("account already verified")

	// otp
	ErrIncorrectOTP = errors.New("incorrect otp")
	ErrInvalidOTP   = errors.New("invalid otp")
	ErrOTPExpired   = errors.New("otp expired")

	// two-factor
	ErrTwoFactorAlreadyEnabled  = errors.New("two-factor authentication already enabled")
	ErrTwoFactorAlreadyDisabled = errors.New("two-factor authentication already disabled")
	ErrTwoFactorNotEnabled      = errors.New("two-factor authentication is not enabled")
	ErrSamePrimaryEmail         = errors.New("two-factor email must differ from primary email")
	ErrEmailMismatch            = errors.New("two-factor email does not match")

	// content
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrLinkExists      = errors.New("social media link already exists")
	ErrForbidden       = authz.ErrForbidden

	// infrastructure
	ErrStore    = errors.New("store failure")
	ErrUpstream = errors.New("upstream failure")
)

// ValidationError несёт ошибки по полям запроса.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}

func upstreamErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}
