package repository

import (
	"context"
	"errors"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	domainRepo "github.com/unitedfert/receipts-api/internal/domain/repository"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Get(ctx context.Context) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).Order("id ASC").First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) Save(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

type systemListRepository struct {
	db *gorm.DB
}

// NewSystemListRepository creates a new system list repository
func NewSystemListRepository(db *gorm.DB) domainRepo.SystemListRepository {
	return &systemListRepository{db: db}
}

func (r *systemListRepository) ListAll(ctx context.Context) ([]entity.SystemList, error) {
	lists := make([]entity.SystemList, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&lists).Error
	return lists, err
}

func (r *systemListRepository) GetByType(ctx context.Context, listType string) (*entity.SystemList, error) {
	var list entity.SystemList
	err := r.db.WithContext(ctx).First(&list, "list_type = ?", listType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &list, err
}

func (r *systemListRepository) Save(ctx context.Context, list *entity.SystemList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *systemListRepository) SaveAll(ctx context.Context, lists []*entity.SystemList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, list := range lists {
			if err := tx.Save(list).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *systemListRepository) CreateAll(ctx context.Context, lists []entity.SystemList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range lists {
			if err := tx.Create(&lists[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
