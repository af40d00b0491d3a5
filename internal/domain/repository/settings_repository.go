package repository

import (
	"context"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
)

// CompanyRepository manages the singleton company record.
type CompanyRepository interface {
	// Get returns the company record, or nil if none exists yet.
	Get(ctx context.Context) (*entity.Company, error)
	// Save inserts or updates the record.
	Save(ctx context.Context, company *entity.Company) error
}

// SystemListRepository defines the interface for system list operations
type SystemListRepository interface {
	ListAll(ctx context.Context) ([]entity.SystemList, error)
	GetByType(ctx context.Context, listType string) (*entity.SystemList, error)
	Save(ctx context.Context, list *entity.SystemList) error
	// SaveAll upserts the given lists in one transaction: either every
	// list is written or none is.
	SaveAll(ctx context.Context, lists []*entity.SystemList) error
	// CreateAll inserts the given lists atomically; used for the
	// first-access default seed.
	CreateAll(ctx context.Context, lists []entity.SystemList) error
}
