package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"bloghub/internal/models"
	"bloghub/internal/repositories"
	"bloghub/internal/storage"
	"bloghub/internal/utils"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest, image *storage.Object) (*models.User, error)
	VerifyAccount(ctx context.Context, email string, otp int) (*models.User, error)
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	repo     repositories.UserRepository
	activity repositories.ActivityRepository
	emails   EmailService
	auth     AuthService
	uploader storage.Uploader
	log      logrus.FieldLogger

	otpTTL time.Duration
	now    func() time.Time
	newOTP utils.OTPGenerator
}

func NewUserService(
	repo repositories.UserRepository,
	activity repositories.ActivityRepository,
	emails EmailService,
	auth AuthService,
	uploader storage.Uploader,
	otpTTL time.Duration,
	log logrus.FieldLogger,
) UserService {
	return &userService{
		repo:     repo,
		activity: activity,
		emails:   emails,
		auth:     auth,
		uploader: uploader,
		log:      log,
		otpTTL:   utils.OTPTTL(otpTTL),
		now:      time.Now,
		newOTP:   utils.NewOTP,
	}
}

func (s *userService) Register(ctx context.Context, req models.RegisterRequest, image *storage.Object) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, storeErr("get user by email", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	otp, err := s.newOTP()
	if err != nil {
		return nil, err
	}
	expires := s.now().Add(s.otpTTL)

	user := &models.User{
		Name:                     req.Name,
		Email:                    req.Email,
		PasswordHash:             hash,
		RegistrationOTP:          &otp,
		RegistrationOTPExpiresAt: &expires,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, storeErr("create user", err)
	}
	s.log.WithField("user_id", user.ID).Info("[auth][register] user created, verification pending")

	// загрузка после вставки: проигранная гонка за email не оставляет файлов
	if image != nil {
		image.Prefix = "profile"
		url, err := s.uploader.Upload(ctx, *image)
		if err != nil {
			s.log.WithError(err).WithField("user_id", user.ID).Warn("[auth][register] profile image upload failed")
			return nil, upstreamErr("upload profile image", err)
		}
		if err := s.repo.UpdateProfileImage(ctx, user.ID, url); err != nil {
			return nil, storeErr("update profile image", err)
		}
		user.ProfileImageURL = url
	}

	if err := s.emails.SendVerificationOTP(user.Email, user.Name, otp); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("[auth][register] verification email failed")
		return nil, upstreamErr("send verification email", err)
	}
	return user.Public(), nil
}

func (s *userService) VerifyAccount(ctx context.Context, email string, otp int) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, storeErr("get user by email", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.AccountVerified || user.RegistrationOTP == nil || *user.RegistrationOTP != otp {
		return nil, ErrIncorrectOTP
	}
	now := s.now()
	if expired(user.RegistrationOTPExpiresAt, now) {
		return nil, ErrOTPExpired
	}

	verified, err := s.repo.ConsumeRegistrationOTP(ctx, email, otp, now)
	if err != nil {
		return nil, storeErr("consume registration otp", err)
	}
	if verified == nil {
		// код уже использован параллельным запросом
		return nil, ErrIncorrectOTP
	}
	s.log.WithField("user_id", verified.ID).Info("[auth][verify] account verified")

	if err := s.activity.Append(ctx, &models.ActivityLog{UserID: verified.ID, Action: models.ActivityAccountVerified}); err != nil {
		return nil, storeErr("append activity", err)
	}
	if err := s.emails.SendAccountVerified(verified.Email, verified.Name); err != nil {
		return nil, upstreamErr("send account verified email", err)
	}
	return verified.Public(), nil
}

func (s *userService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return storeErr("get user by email", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.AccountVerified {
		return ErrAlreadyVerified
	}

	otp, err := s.newOTP()
	if err != nil {
		return err
	}
	if err := s.repo.SetRegistrationOTP(ctx, user.ID, otp, s.now().Add(s.otpTTL)); err != nil {
		return storeErr("set registration otp", err)
	}
	if err := s.emails.SendVerificationOTP(user.Email, user.Name, otp); err != nil {
		return upstreamErr("send verification email", err)
	}
	s.log.WithField("user_id", user.ID).Info("[auth][resend] verification code reissued")
	return nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, storeErr("get user by email", err)
	}
	if user == nil {
		return "", nil, ErrUserNotFound
	}
	// до проверки пароля
	if !user.AccountVerified {
		return "", nil, ErrNotVerified
	}
	if !s.auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrWrongPassword
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user.Public(), nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get user by id", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}

func expired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && !now.Before(*expiresAt)
}
