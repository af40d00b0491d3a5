package service

import (
	"context"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	"github.com/unitedfert/receipts-api/internal/domain/repository"
)

// SettingsService manages company branding and the named system lists.
type SettingsService struct {
	companyRepo repository.CompanyRepository
	listRepo    repository.SystemListRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(companyRepo repository.CompanyRepository, listRepo repository.SystemListRepository) *SettingsService {
	return &SettingsService{
		companyRepo: companyRepo,
		listRepo:    listRepo,
	}
}

// GetCompany returns the company record, creating it with the default name on
// first read.
func (s *SettingsService) GetCompany(ctx context.Context) (*entity.Company, error) {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = &entity.Company{Name: entity.DefaultCompanyName}
		if err := s.companyRepo.Save(ctx, company); err != nil {
			return nil, err
		}
	}
	return company, nil
}

// UpdateCompanyInput represents the update company input
type UpdateCompanyInput struct {
	Name   *string
	Logo   *string
	Header *string
	Footer *string
}

// UpdateCompany merges only the supplied fields, creating the record if it
// does not exist yet.
func (s *SettingsService) UpdateCompany(ctx context.Context, input *UpdateCompanyInput) (*entity.Company, error) {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = &entity.Company{Name: entity.DefaultCompanyName}
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Logo != nil {
		company.Logo = *input.Logo
	}
	if input.Header != nil {
		company.Header = *input.Header
	}
	if input.Footer != nil {
		company.Footer = *input.Footer
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetLists returns every list type mapped to its items. When storage holds no
// lists at all the four defaults are seeded atomically and returned.
func (s *SettingsService) GetLists(ctx context.Context) (map[string][]string, error) {
	lists, err := s.listRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(lists) == 0 {
		lists = entity.DefaultSystemLists()
		if err := s.listRepo.CreateAll(ctx, lists); err != nil {
			return nil, err
		}
	}

	result := make(map[string][]string, len(lists))
	for _, list := range lists {
		result[list.ListType] = list.Items
	}
	return result, nil
}

// UpdateLists replaces the item collection per supplied type, creating types
// that do not exist yet. Types not mentioned are left untouched. All supplied
// types are written in one transaction; a failure leaves every list as it was.
func (s *SettingsService) UpdateLists(ctx context.Context, lists map[string][]string) error {
	pending := make([]*entity.SystemList, 0, len(lists))
	for listType, items := range lists {
		existing, err := s.listRepo.GetByType(ctx, listType)
		if err != nil {
			return err
		}
		if existing == nil {
			existing = &entity.SystemList{ListType: listType}
		}
		existing.Items = entity.StringList(items)
		pending = append(pending, existing)
	}
	return s.listRepo.SaveAll(ctx, pending)
}
