package routes

import (
	"github.com/gin-gonic/gin"

	"bloghub/internal/handlers"
	"bloghub/internal/middleware"
	"bloghub/internal/utils"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Password *handlers.PasswordHandler
	Post     *handlers.PostHandler
	Comment  *handlers.CommentHandler
	Profile  *handlers.ProfileHandler
}

func SetupRoutes(r *gin.Engine, issuer *utils.TokenIssuer, h Handlers) *gin.Engine {
	jwt := middleware.AuthMiddleware(issuer)
	api := r.Group("/api")

	// ---- auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/verify-account", h.Auth.VerifyAccount)
		auth.POST("/resend-otp", h.Auth.ResendOTP)
		auth.POST("/login", h.Auth.Login)

		auth.GET("/user", jwt, h.Auth.CurrentUser)
		auth.PUT("/enableTwoFactorAuth", jwt, h.Auth.EnableTwoFactor)
		auth.PUT("/disableTwoFactorAuth", jwt, h.Auth.DisableTwoFactor)
		auth.POST("/addTwoFactorEmail", jwt, h.Auth.AddTwoFactorEmail)
		auth.PUT("/verifytwofactoremail", jwt, h.Auth.VerifyTwoFactorEmail)
	}

	// ---- password reset
	password := api.Group("/password", jwt)
	{
		password.POST("", h.Password.RequestReset)
		password.POST("/reset-password", h.Password.ResetPassword)
	}

	// ---- posts & comments (чтение публичное)
	post := api.Group("/post")
	{
		post.GET("", h.Post.List)
		post.POST("", jwt, h.Post.Create)
		post.PUT("/update/:id", jwt, h.Post.Update)
		post.DELETE("/delete/:id", jwt, h.Post.Delete)

		post.GET("/comment/:post_id", h.Comment.List)
		post.POST("/comment/:post_id", jwt, h.Comment.Create)
		post.PUT("/comment/update/:comment_id", jwt, h.Comment.Update)
		post.DELETE("/comment/delete/:comment_id", jwt, h.Comment.Delete)

		post.GET("/:id", h.Post.Get)
	}

	// ---- profile
	profile := api.Group("/profile", jwt)
	{
		profile.GET("", h.Profile.Profile)
		profile.GET("/socialMediaLinks", h.Profile.ListLinks)
		profile.POST("/socialMediaLinks", h.Profile.AddLink)
		profile.PUT("/profileCoverImage", h.Profile.UpdateCoverImage)
		profile.GET("/userActivity", h.Profile.Activity)
		profile.GET("/userActivity/report", h.Profile.ActivityReport)
	}

	return r
}
