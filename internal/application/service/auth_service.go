package service

import (
	"context"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	"github.com/unitedfert/receipts-api/internal/domain/repository"
	"github.com/unitedfert/receipts-api/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies operator credentials.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login verifies username and password and returns the matching active user.
// Unknown usernames, deactivated accounts and wrong passwords all fail with
// the same error so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, apperror.NewValidationError("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}
