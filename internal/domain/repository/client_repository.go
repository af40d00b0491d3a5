package repository

import (
	"context"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	// GetByClientID looks a client up by its business identifier.
	GetByClientID(ctx context.Context, clientID string) (*entity.Client, error)
	List(ctx context.Context) ([]entity.Client, error)
}
