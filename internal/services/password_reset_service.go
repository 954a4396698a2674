package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"bloghub/internal/repositories"
	"bloghub/internal/utils"
)

type PasswordResetService interface {
	RequestReset(ctx context.Context, userID int64) error
	ResetPassword(ctx context.Context, userID int64, otp int, newPassword string) error
}

type passwordResetService struct {
	userRepo repositories.UserRepository
	emails   EmailService
	auth     AuthService
	log      logrus.FieldLogger

	otpTTL time.Duration
	now    func() time.Time
	newOTP utils.OTPGenerator
}

func NewPasswordResetService(userRepo repositories.UserRepository, emails EmailService, auth AuthService, otpTTL time.Duration, log logrus.FieldLogger) PasswordResetService {
	return &passwordResetService{
		userRepo: userRepo,
		emails:   emails,
		auth:     auth,
		log:      log,
		otpTTL:   utils.OTPTTL(otpTTL),
		now:      time.Now,
		newOTP:   utils.NewOTP,
	}
}

func (s *passwordResetService) RequestReset(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return storeErr("get user by id", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	otp, err := s.newOTP()
	if err != nil {
		return err
	}
	if err := s.userRepo.SetPasswordResetOTP(ctx, userID, otp, s.now().Add(s.otpTTL)); err != nil {
		return storeErr("set password reset otp", err)
	}
	if err := s.emails.SendPasswordResetOTP(user.Email, user.Name, otp); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("[password-reset] failed to send email")
		return upstreamErr("send password reset email", err)
	}
	s.log.WithField("user_id", userID).Info("[password-reset][request] code sent")
	return nil
}

func (s *passwordResetService) ResetPassword(ctx context.Context, userID int64, otp int, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return storeErr("get user by id", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.PasswordResetOTP == nil || *user.PasswordResetOTP != otp {
		return ErrInvalidOTP
	}
	now := s.now()
	if expired(user.PasswordResetOTPExpiresAt, now) {
		return ErrOTPExpired
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	ok, err := s.userRepo.ConsumePasswordResetOTP(ctx, userID, otp, now, hash)
	if err != nil {
		return storeErr("consume password reset otp", err)
	}
	if !ok {
		return ErrInvalidOTP
	}
	s.log.WithField("user_id", userID).Info("[password-reset][reset] password changed")

	if err := s.emails.SendPasswordResetSuccess(user.Email, user.Name); err != nil {
		return upstreamErr("send password reset success email", err)
	}
	return nil
}
