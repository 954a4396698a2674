package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bloghub/docs"
	"bloghub/internal/config"
	"bloghub/internal/database"
	"bloghub/internal/handlers"
	"bloghub/internal/middleware"
	"bloghub/internal/pdf"
	"bloghub/internal/repositories"
	"bloghub/internal/routes"
	"bloghub/internal/services"
	"bloghub/internal/storage"
	"bloghub/internal/utils"
)

// NewLogger собирает logrus по секции log.
func NewLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if strings.EqualFold(cfg.Log.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func newUploader(ctx context.Context, cfg *config.Config) (storage.Uploader, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return storage.NewS3Uploader(ctx, storage.S3Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			PublicURL: cfg.Storage.PublicURL,
		})
	default:
		return storage.NewLocalUploader(cfg.Files.RootDir, cfg.Files.PublicURL), nil
	}
}

func newEmailSender(cfg *config.Config, logger logrus.FieldLogger) services.EmailSender {
	if cfg.Email.DryRun || cfg.Email.SMTPHost == "" {
		return services.NewDryRunSender(logger)
	}
	return services.NewSMTPSender(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, db *sql.DB, uploader storage.Uploader, sender services.EmailSender, logger *logrus.Logger) (*gin.Engine, error) {
	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	linkRepo := repositories.NewSocialLinkRepository(db)

	// === Services ===
	issuer := utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := services.NewAuthService(issuer, 0)
	emailService, err := services.NewEmailService(sender)
	if err != nil {
		return nil, err
	}

	userService := services.NewUserService(userRepo, activityRepo, emailService, authService, uploader, cfg.OTP.TTL, logger)
	twoFactorService := services.NewTwoFactorService(userRepo, emailService, cfg.OTP.TTL, logger)
	resetService := services.NewPasswordResetService(userRepo, emailService, authService, cfg.OTP.TTL, logger)
	postService := services.NewPostService(postRepo, commentRepo, userRepo, activityRepo, uploader, logger)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo, activityRepo, logger)
	profileService := services.NewProfileService(userRepo, linkRepo, activityRepo, uploader, pdf.NewActivityGenerator(cfg.Reports.FontPath), logger)

	// === Gin ===
	handlers.RegisterValidators()
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.Storage.Driver != "s3" {
		router.Static(cfg.Files.PublicURL, cfg.Files.RootDir)
	}

	routes.SetupRoutes(router, issuer, routes.Handlers{
		Auth:     handlers.NewAuthHandler(userService, twoFactorService, logger),
		Password: handlers.NewPasswordHandler(resetService, logger),
		Post:     handlers.NewPostHandler(postService, logger),
		Comment:  handlers.NewCommentHandler(commentService, logger),
		Profile:  handlers.NewProfileHandler(profileService, logger),
	})
	return router, nil
}

// Run поднимает HTTP-сервер и останавливает его по отмене ctx.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg)
	goose.SetLogger(logger)
	gin.SetMode(gin.ReleaseMode)

	// === DB ===
	db, err := database.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("[app] db close failed")
		}
	}()
	if cfg.Database.AutoMigrate {
		if err := database.MigrateUp(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		return err
	}
	router, err := NewRouter(cfg, db, uploader, newEmailSender(cfg, logger), logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", srv.Addr).Info("[app] server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("[app] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
