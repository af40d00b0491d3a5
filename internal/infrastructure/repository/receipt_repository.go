package repository

import (
	"context"
	"errors"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	domainRepo "github.com/unitedfert/receipts-api/internal/domain/repository"
	"github.com/unitedfert/receipts-api/pkg/apperror"
	"github.com/unitedfert/receipts-api/pkg/pagination"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// receiptFilterScope applies a ReceiptFilter to a receipts query. The search
// term matches number, client id and client name by substring.
func receiptFilterScope(filter *domainRepo.ReceiptFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if filter.Branch != "" && filter.Branch != domainRepo.FilterAll {
			db = db.Where("branch = ?", filter.Branch)
		}
		if filter.Method != "" && filter.Method != domainRepo.FilterAll {
			db = db.Where("method = ?", filter.Method)
		}
		if filter.Bank != "" && filter.Bank != domainRepo.FilterAll {
			db = db.Where("bank = ?", filter.Bank)
		}
		if filter.Reason != "" && filter.Reason != domainRepo.FilterAll {
			db = db.Where("reason = ?", filter.Reason)
		}
		if filter.DateFrom != nil {
			db = db.Where("date >= ?", filter.DateFrom.String())
		}
		if filter.DateTo != nil {
			db = db.Where("date <= ?", filter.DateTo.String())
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			db = db.Where("CAST(number AS TEXT) LIKE ? OR client_id LIKE ? OR client_name LIKE ?",
				like, like, like)
		}
		if filter.CreatedBy != "" {
			db = db.Where("created_by = ?", filter.CreatedBy)
		}
		return db
	}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(receipt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.NewConflictError("Receipt number already exists")
			}
			return err
		}
		// Best effort: a receipt recorded under an unknown username
		// still commits, with no serial to bump.
		return tx.Model(&entity.User{}).
			Where("username = ?", receipt.CreatedBy).
			Update("last_serial", receipt.Number).Error
	})
}

func (r *receiptRepository) GetByID(ctx context.Context, id uint) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetByNumber(ctx context.Context, number int) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) Update(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Save(receipt).Error
}

func (r *receiptRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Receipt{}, "id = ?", id).Error
}

func (r *receiptRepository) List(ctx context.Context, filter *domainRepo.ReceiptFilter, params *pagination.Params) ([]entity.Receipt, int64, error) {
	receipts := make([]entity.Receipt, 0)
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).Scopes(receiptFilterScope(filter))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Order("date DESC, number DESC").
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&receipts).Error

	return receipts, total, err
}

func (r *receiptRepository) Stats(ctx context.Context, branch, createdBy string) (*domainRepo.ReceiptStats, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&entity.Receipt{})
		if branch != "" && branch != domainRepo.FilterAll {
			q = q.Where("branch = ?", branch)
		}
		if createdBy != "" {
			q = q.Where("created_by = ?", createdBy)
		}
		return q
	}

	stats := &domainRepo.ReceiptStats{
		BranchStats: make([]domainRepo.GroupStat, 0),
		MethodStats: make([]domainRepo.GroupStat, 0),
	}

	if err := base().Count(&stats.TotalReceipts).Error; err != nil {
		return nil, err
	}
	if err := base().Select("COALESCE(SUM(bank_amount), 0)").Scan(&stats.TotalAmount).Error; err != nil {
		return nil, err
	}
	if err := base().Where("date = ?", entity.Today().String()).Count(&stats.TodayReceipts).Error; err != nil {
		return nil, err
	}
	if err := base().Where("approved = ?", false).Count(&stats.PendingApproval).Error; err != nil {
		return nil, err
	}
	if err := base().
		Select("branch AS name, COALESCE(SUM(bank_amount), 0) AS amount, COUNT(*) AS count").
		Group("branch").
		Scan(&stats.BranchStats).Error; err != nil {
		return nil, err
	}
	if err := base().
		Select("method AS name, COALESCE(SUM(bank_amount), 0) AS amount, COUNT(*) AS count").
		Group("method").
		Scan(&stats.MethodStats).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
