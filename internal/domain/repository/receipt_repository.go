package repository

import (
	"context"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	"github.com/unitedfert/receipts-api/pkg/pagination"
)

// FilterAll is the wildcard value ("all") the frontend sends to disable a
// field filter.
const FilterAll = "الكل"

// ReceiptFilter narrows receipt queries. Empty fields and FilterAll values
// match everything; the date range is inclusive on both ends.
type ReceiptFilter struct {
	Branch    string
	Method    string
	Bank      string
	Reason    string
	DateFrom  *entity.Date
	DateTo    *entity.Date
	Search    string
	CreatedBy string
}

// GroupStat is one row of a grouped aggregate over receipts.
type GroupStat struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

// ReceiptStats aggregates a filtered receipt population. Missing bank amounts
// count as zero.
type ReceiptStats struct {
	TotalReceipts   int64       `json:"totalReceipts"`
	TotalAmount     float64     `json:"totalAmount"`
	TodayReceipts   int64       `json:"todayReceipts"`
	PendingApproval int64       `json:"pendingApproval"`
	BranchStats     []GroupStat `json:"branchStats"`
	MethodStats     []GroupStat `json:"methodStats"`
}

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	// Create persists the receipt and records its number as the creating
	// user's last serial in the same transaction. An unknown creator
	// username does not fail the creation.
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uint) (*entity.Receipt, error)
	GetByNumber(ctx context.Context, number int) (*entity.Receipt, error)
	Update(ctx context.Context, receipt *entity.Receipt) error
	Delete(ctx context.Context, id uint) error
	// List returns receipts matching the filter, most recent first (date
	// descending, number descending), plus the unpaginated total.
	List(ctx context.Context, filter *ReceiptFilter, params *pagination.Params) ([]entity.Receipt, int64, error)
	// Stats aggregates receipts, optionally restricted to a branch and a
	// creating user.
	Stats(ctx context.Context, branch, createdBy string) (*ReceiptStats, error)
}
