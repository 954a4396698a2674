package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bloghub/internal/middleware"
	"bloghub/internal/models"
	"bloghub/internal/services"
)

type AuthHandler struct {
	users     services.UserService
	twoFactor services.TwoFactorService
	log       logrus.FieldLogger
}

func NewAuthHandler(users services.UserService, twoFactor services.TwoFactorService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{users: users, twoFactor: twoFactor, log: log}
}

// @Summary      Регистрация
// @Description  Создаёт пользователя и отправляет код подтверждения на email
// @Tags         Auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name             formData  string  true   "Name"
// @Param        email            formData  string  true   "Email"
// @Param        password         formData  string  true   "Password"
// @Param        confirmPassword  formData  string  true   "Password confirmation"
// @Param        profileImage     formData  file    false  "Profile image"
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	img, err := formImage(c, "profileImage")
	if err != nil {
		respondError(c, h.log, "[auth][register]", err)
		return
	}
	defer img.Close()

	user, err := h.users.Register(c.Request.Context(), req, img.object())
	if err != nil {
		respondError(c, h.log, "[auth][register]", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered. Check your email for the verification code.",
		"user":    user,
	})
}

// @Summary      Подтверждение аккаунта
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.VerifyAccountRequest  true  "Email and code"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/verify-account [post]
func (h *AuthHandler) VerifyAccount(c *gin.Context) {
	var req models.VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	user, err := h.users.VerifyAccount(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		respondError(c, h.log, "[auth][verify]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account verified", "user": user})
}

// @Summary  Повторная отправка кода
// @Tags     Auth
// @Param    body  body  models.ResendOTPRequest  true  "Email"
// @Router   /auth/resend-otp [post]
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req models.ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	if err := h.users.ResendVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.log, "[auth][resend]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// @Summary      Вход в систему
// @Description  Возвращает JWT, действительный 30 дней
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Данные для входа"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	token, user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, "[auth][login]", err)
		return
	}
	h.log.WithField("user_id", user.ID).Info("[auth][login] success")
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// CurrentUser отдаёт claims из токена, без запроса в базу.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":               claims.ID,
		"name":             claims.Name,
		"email":            claims.Email,
		"account_verified": claims.AccountVerified,
	}})
}

// ===== two-factor =====

// @Summary   Включить 2FA
// @Tags      TwoFactor
// @Security  BearerAuth
// @Router    /auth/enableTwoFactorAuth [put]
func (h *AuthHandler) EnableTwoFactor(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	if err := h.twoFactor.Enable(c.Request.Context(), userID); err != nil {
		respondError(c, h.log, "[2fa][enable]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication enabled"})
}

// @Summary   Выключить 2FA
// @Tags      TwoFactor
// @Security  BearerAuth
// @Router    /auth/disableTwoFactorAuth [put]
func (h *AuthHandler) DisableTwoFactor(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	if err := h.twoFactor.Disable(c.Request.Context(), userID); err != nil {
		respondError(c, h.log, "[2fa][disable]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication disabled"})
}

// @Summary   Добавить email для 2FA
// @Tags      TwoFactor
// @Security  BearerAuth
// @Param     body  body  models.TwoFactorEmailRequest  true  "Two-factor email"
// @Router    /auth/addTwoFactorEmail [post]
func (h *AuthHandler) AddTwoFactorEmail(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	var req models.TwoFactorEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	if err := h.twoFactor.AddEmail(c.Request.Context(), userID, req.TwoFactorEmail); err != nil {
		respondError(c, h.log, "[2fa][add-email]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent to the two-factor email"})
}

// @Summary   Подтвердить email для 2FA
// @Tags      TwoFactor
// @Security  BearerAuth
// @Param     body  body  models.TwoFactorVerifyRequest  true  "Two-factor email and code"
// @Router    /auth/verifytwofactoremail [put]
func (h *AuthHandler) VerifyTwoFactorEmail(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	var req models.TwoFactorVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	if err := h.twoFactor.VerifyEmail(c.Request.Context(), userID, req.TwoFactorEmail, req.OTP); err != nil {
		respondError(c, h.log, "[2fa][verify-email]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Two-factor email verified"})
}
