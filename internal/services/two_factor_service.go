package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"bloghub/internal/models"
	"bloghub/internal/repositories"
	"bloghub/internal/utils"
)

// TwoFactorService: Disabled -> Enabled -> EmailPending -> EmailVerified.
type TwoFactorService interface {
	Enable(ctx context.Context, userID int64) error
	Disable(ctx context.Context, userID int64) error
	AddEmail(ctx context.Context, userID int64, email string) error
	VerifyEmail(ctx context.Context, userID int64, email string, otp int) error
}

type twoFactorService struct {
	repo   repositories.UserRepository
	emails EmailService
	log    logrus.FieldLogger

	otpTTL time.Duration
	now    func() time.Time
	newOTP utils.OTPGenerator
}

func NewTwoFactorService(repo repositories.UserRepository, emails EmailService, otpTTL time.Duration, log logrus.FieldLogger) TwoFactorService {
	return &twoFactorService{
		repo:   repo,
		emails: emails,
		log:    log,
		otpTTL: utils.OTPTTL(otpTTL),
		now:    time.Now,
		newOTP: utils.NewOTP,
	}
}

func (s *twoFactorService) load(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeErr("get user by id", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *twoFactorService) Enable(ctx context.Context, userID int64) error {
	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if user.TwoFactorEnabled {
		return ErrTwoFactorAlreadyEnabled
	}
	ok, err := s.repo.EnableTwoFactor(ctx, userID)
	if err != nil {
		return storeErr("enable two-factor", err)
	}
	if !ok {
		return ErrTwoFactorAlreadyEnabled
	}
	s.log.WithField("user_id", userID).Info("[2fa][enable] two-factor enabled")
	return nil
}

func (s *twoFactorService) Disable(ctx context.Context, userID int64) error {
	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TwoFactorEnabled {
		return ErrTwoFactorAlreadyDisabled
	}
	ok, err := s.repo.DisableTwoFactor(ctx, userID)
	if err != nil {
		return storeErr("disable two-factor", err)
	}
	if !ok {
		return ErrTwoFactorAlreadyDisabled
	}
	s.log.WithField("user_id", userID).Info("[2fa][disable] two-factor disabled")
	return nil
}

func (s *twoFactorService) AddEmail(ctx context.Context, userID int64, email string) error {
	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TwoFactorEnabled {
		return ErrTwoFactorNotEnabled
	}
	if email == user.Email {
		return ErrSamePrimaryEmail
	}

	otp, err := s.newOTP()
	if err != nil {
		return err
	}
	ok, err := s.repo.SetTwoFactorEmailOTP(ctx, userID, email, otp, s.now().Add(s.otpTTL))
	if err != nil {
		return storeErr("set two-factor email otp", err)
	}
	if !ok {
		return ErrTwoFactorNotEnabled
	}
	if err := s.emails.SendTwoFactorEmailOTP(email, user.Name, otp); err != nil {
		return upstreamErr("send two-factor email otp", err)
	}
	s.log.WithField("user_id", userID).Info("[2fa][add-email] verification code sent")
	return nil
}

func (s *twoFactorService) VerifyEmail(ctx context.Context, userID int64, email string, otp int) error {
	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TwoFactorEnabled {
		return ErrTwoFactorNotEnabled
	}
	if user.TwoFactorEmail == nil || *user.TwoFactorEmail != email {
		return ErrEmailMismatch
	}
	if user.TwoFactorEmailOTP == nil || *user.TwoFactorEmailOTP != otp {
		return ErrIncorrectOTP
	}
	now := s.now()
	if expired(user.TwoFactorOTPExpiresAt, now) {
		return ErrOTPExpired
	}

	ok, err := s.repo.ConsumeTwoFactorEmailOTP(ctx, userID, email, otp, now)
	if err != nil {
		return storeErr("consume two-factor email otp", err)
	}
	if !ok {
		return ErrIncorrectOTP
	}
	if err := s.emails.SendTwoFactorEmailVerified(email, user.Name); err != nil {
		return upstreamErr("send two-factor verified email", err)
	}
	s.log.WithField("user_id", userID).Info("[2fa][verify-email] two-factor email verified")
	return nil
}
