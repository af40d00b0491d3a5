package repository

import (
	"context"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
//
// Lookups other than ListActive see deactivated users too: soft-deleted
// accounts keep reserving their username and code.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByUsernameOrCode returns any user holding either identifier, or
	// nil when both are free.
	FindByUsernameOrCode(ctx context.Context, username, code string) (*entity.User, error)
	// UsernameTaken reports whether another user (excluding excludeID)
	// holds the username.
	UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
	CodeTaken(ctx context.Context, code string, excludeID uint) (bool, error)
	ListActive(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
