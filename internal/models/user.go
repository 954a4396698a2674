package models

import "time"

type User struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PasswordHash    string `json:"-"` // не отдаём наружу
	AccountVerified bool   `json:"account_verified"`

	// одноразовые коды: по одному слоту на назначение
	RegistrationOTP          *int       `json:"-"`
	RegistrationOTPExpiresAt *time.Time `json:"-"`

	TwoFactorEnabled       bool       `json:"two_factor_enabled"`
	TwoFactorEmail         *string    `json:"two_factor_email,omitempty"`
	TwoFactorEmailOTP      *int       `json:"-"`
	TwoFactorOTPExpiresAt  *time.Time `json:"-"`
	TwoFactorEmailVerified bool       `json:"two_factor_email_verified"`

	PasswordResetOTP          *int       `json:"-"`
	PasswordResetOTPExpiresAt *time.Time `json:"-"`

	ProfileImageURL string    `json:"profile_image_url"`
	CoverImageURL   string    `json:"cover_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// Public returns a copy without secrets, safe to send to the client.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.PasswordHash = ""
	cp.RegistrationOTP = nil
	cp.RegistrationOTPExpiresAt = nil
	cp.TwoFactorEmailOTP = nil
	cp.TwoFactorOTPExpiresAt = nil
	cp.PasswordResetOTP = nil
	cp.PasswordResetOTPExpiresAt = nil
	return &cp
}

type RegisterRequest struct {
	Name            string `form:"name" json:"name" binding:"required,min=5,max=40"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required,min=6,max=72"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type VerifyAccountRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   int    `json:"otp" binding:"required,min=100000,max=999999"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type TwoFactorEmailRequest struct {
	TwoFactorEmail string `json:"twoFactorEmail" binding:"required,email"`
}

type TwoFactorVerifyRequest struct {
	TwoFactorEmail string `json:"twoFactorEmail" binding:"required,email"`
	OTP            int    `json:"otp" binding:"required,min=100000,max=999999"`
}

type PasswordResetRequest struct {
	OTP             int    `json:"otp" binding:"required,min=100000,max=999999"`
	Password        string `json:"password" binding:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}
