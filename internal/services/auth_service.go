package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bloghub/internal/models"
	"bloghub/internal/utils"
)

type AuthService interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool
	IssueToken(user *models.User) (string, error)
}

type authService struct {
	issuer *utils.TokenIssuer
	cost   int
}

// NewAuthService; cost <= 0 means bcrypt.DefaultCost.
func NewAuthService(issuer *utils.TokenIssuer, cost int) AuthService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &authService{issuer: issuer, cost: cost}
}

func (s *authService) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		// max=72 в биндинге считает символы, bcrypt считает байты
		return "", NewValidationError("password", "must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *authService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *authService) IssueToken(user *models.User) (string, error) {
	return s.issuer.Issue(user.ID, user.Name, user.Email, user.AccountVerified)
}
