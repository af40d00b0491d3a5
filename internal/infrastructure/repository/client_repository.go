package repository

import (
	"context"
	"errors"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	domainRepo "github.com/unitedfert/receipts-api/internal/domain/repository"
	"github.com/unitedfert/receipts-api/pkg/apperror"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	err := r.db.WithContext(ctx).Create(client).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Client ID already exists")
	}
	return err
}

func (r *clientRepository) GetByClientID(ctx context.Context, clientID string) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "client_id = ?", clientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) List(ctx context.Context) ([]entity.Client, error) {
	clients := make([]entity.Client, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error
	return clients, err
}
