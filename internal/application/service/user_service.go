package service

import (
	"context"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	"github.com/unitedfert/receipts-api/internal/domain/repository"
	"github.com/unitedfert/receipts-api/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles operator account management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns active users only.
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.ListActive(ctx)
}

// GetUser returns a user by ID, deactivated accounts included.
func (s *UserService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Username   string
	Code       string
	Password   string
	Role       string
	Branch     string
	LastSerial *int
	StorageURL *string
}

// CreateUser creates a new operator account. Username and code must be free
// across all users, deactivated ones included.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"username", input.Username != ""},
		{"code", input.Code != ""},
		{"password", input.Password != ""},
		{"role", input.Role != ""},
		{"branch", input.Branch != ""},
	}
	for _, field := range required {
		if !field.ok {
			return nil, apperror.NewValidationError("Missing required field: " + field.name)
		}
	}

	existing, err := s.userRepo.FindByUsernameOrCode(ctx, input.Username, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username or code already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:   input.Username,
		Code:       input.Code,
		Password:   string(hashed),
		Role:       input.Role,
		Branch:     input.Branch,
		LastSerial: entity.DefaultLastSerial,
		StorageURL: entity.DefaultStorageURL,
		Active:     true,
	}
	if input.LastSerial != nil {
		user.LastSerial = *input.LastSerial
	}
	if input.StorageURL != nil {
		user.StorageURL = *input.StorageURL
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput represents the update user input
type UpdateUserInput struct {
	Username   *string
	Code       *string
	Password   *string
	Role       *string
	Branch     *string
	LastSerial *int
	StorageURL *string
	Active     *bool
}

// UpdateUser merges only the supplied fields, re-validating uniqueness for a
// changed username or code against every other user.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Username != nil && *input.Username != user.Username {
		taken, err := s.userRepo.UsernameTaken(ctx, *input.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.NewConflictError("Username already exists")
		}
		user.Username = *input.Username
	}
	if input.Code != nil && *input.Code != user.Code {
		taken, err := s.userRepo.CodeTaken(ctx, *input.Code, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.NewConflictError("Code already exists")
		}
		user.Code = *input.Code
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Branch != nil {
		user.Branch = *input.Branch
	}
	if input.LastSerial != nil {
		user.LastSerial = *input.LastSerial
	}
	if input.StorageURL != nil {
		user.StorageURL = *input.StorageURL
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser soft-deletes a user: the record is retained and keeps
// reserving its username and code.
func (s *UserService) DeactivateUser(ctx context.Context, id uint) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	user.Active = false
	return s.userRepo.Update(ctx, user)
}

// SetLastSerial overwrites the user's last issued receipt number. No
// monotonicity check is made; the caller owns the numbering discipline.
func (s *UserService) SetLastSerial(ctx context.Context, id uint, serial int) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	user.LastSerial = serial
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
