package service

import (
	"context"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	"github.com/unitedfert/receipts-api/internal/domain/repository"
	"github.com/unitedfert/receipts-api/pkg/apperror"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// ListClients returns all clients.
func (s *ClientService) ListClients(ctx context.Context) ([]entity.Client, error) {
	return s.clientRepo.List(ctx)
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	ClientID string
	Name     string
	Phone    string
	Email    string
	Address  string
	Branch   string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if input.ClientID == "" {
		return nil, apperror.NewValidationError("Missing required field: clientId")
	}
	if input.Name == "" {
		return nil, apperror.NewValidationError("Missing required field: name")
	}

	existing, err := s.clientRepo.GetByClientID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Client ID already exists")
	}

	client := &entity.Client{
		ClientID: input.ClientID,
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Address:  input.Address,
		Branch:   input.Branch,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by its business identifier.
func (s *ClientService) GetClient(ctx context.Context, clientID string) (*entity.Client, error) {
	client, err := s.clientRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}
