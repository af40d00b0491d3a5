package service

import (
	"context"
	"time"

	"github.com/unitedfert/receipts-api/internal/domain/entity"
	"github.com/unitedfert/receipts-api/internal/domain/repository"
	"github.com/unitedfert/receipts-api/pkg/apperror"
	"github.com/unitedfert/receipts-api/pkg/pagination"
)

// ReceiptService handles the receipt lifecycle: creation with serial
// tracking, approval transitions, filtering and statistics.
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo}
}

// ListReceipts returns a filtered page of receipts, most recent first.
func (s *ReceiptService) ListReceipts(ctx context.Context, filter *repository.ReceiptFilter, params *pagination.Params) ([]entity.Receipt, *pagination.Pagination, error) {
	params.Validate()
	receipts, total, err := s.receiptRepo.List(ctx, filter, params)
	if err != nil {
		return nil, nil, err
	}
	return receipts, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	Number     int
	ClientID   string
	ClientName string
	Amount     float64
	BankAmount *float64
	Tafqeet    string
	Method     string
	Bank       string
	Reason     string
	Branch     string
	Invoices   entity.InvoiceList
	CreatedBy  string
	Date       *entity.Date
	Attachment string
	Approved   bool
	ApprovedBy *string
	ApprovedAt *time.Time
}

// CreateReceipt validates and persists a new receipt. The receipt number is
// caller supplied and must be free; the creating user's last serial is
// updated to it as a side effect.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"number", input.Number != 0},
		{"clientName", input.ClientName != ""},
		{"amount", input.Amount != 0},
		{"method", input.Method != ""},
		{"bank", input.Bank != ""},
		{"reason", input.Reason != ""},
		{"branch", input.Branch != ""},
		{"createdBy", input.CreatedBy != ""},
	}
	for _, field := range required {
		if !field.ok {
			return nil, apperror.NewValidationError("Missing required field: " + field.name)
		}
	}

	// Fast-path uniqueness check; the schema unique index remains the
	// authority under concurrent writers.
	existing, err := s.receiptRepo.GetByNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Receipt number already exists")
	}

	bankAmount := input.BankAmount
	if bankAmount == nil {
		amount := input.Amount
		bankAmount = &amount
	}

	date := entity.Today()
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	receipt := &entity.Receipt{
		Number:     input.Number,
		ClientID:   input.ClientID,
		ClientName: input.ClientName,
		Amount:     input.Amount,
		BankAmount: bankAmount,
		Tafqeet:    input.Tafqeet,
		Method:     input.Method,
		Bank:       input.Bank,
		Reason:     input.Reason,
		Branch:     input.Branch,
		Invoices:   input.Invoices,
		CreatedBy:  input.CreatedBy,
		Date:       date,
		Attachment: input.Attachment,
		Approved:   input.Approved,
		ApprovedBy: input.ApprovedBy,
		ApprovedAt: input.ApprovedAt,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetReceipt retrieves a receipt by internal ID.
func (s *ReceiptService) GetReceipt(ctx context.Context, id uint) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// UpdateReceiptInput represents the update receipt input
type UpdateReceiptInput struct {
	ClientID   *string
	ClientName *string
	Amount     *float64
	BankAmount *float64
	Tafqeet    *string
	Method     *string
	Bank       *string
	Reason     *string
	Branch     *string
	Invoices   *entity.InvoiceList
	Attachment *string
	Approved   *bool
	ApprovedBy *string
}

// UpdateReceipt merges only the supplied fields. Setting approved together
// with an approver stamps the approval metadata; clearing approved leaves
// prior approver metadata in place so the approval history stays readable.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, id uint, input *UpdateReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	if input.ClientID != nil {
		receipt.ClientID = *input.ClientID
	}
	if input.ClientName != nil {
		receipt.ClientName = *input.ClientName
	}
	if input.Amount != nil {
		receipt.Amount = *input.Amount
	}
	if input.BankAmount != nil {
		receipt.BankAmount = input.BankAmount
	}
	if input.Tafqeet != nil {
		receipt.Tafqeet = *input.Tafqeet
	}
	if input.Method != nil {
		receipt.Method = *input.Method
	}
	if input.Bank != nil {
		receipt.Bank = *input.Bank
	}
	if input.Reason != nil {
		receipt.Reason = *input.Reason
	}
	if input.Branch != nil {
		receipt.Branch = *input.Branch
	}
	if input.Invoices != nil {
		receipt.Invoices = *input.Invoices
	}
	if input.Attachment != nil {
		receipt.Attachment = *input.Attachment
	}
	if input.Approved != nil {
		receipt.Approved = *input.Approved
		if *input.Approved && input.ApprovedBy != nil {
			now := time.Now().UTC()
			receipt.ApprovedBy = input.ApprovedBy
			receipt.ApprovedAt = &now
		}
	}

	if err := s.receiptRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// ApproveReceipt marks a receipt approved, stamping approver and time
// regardless of prior state. Re-approving restamps. An optional bank amount
// overwrites the recorded one.
func (s *ReceiptService) ApproveReceipt(ctx context.Context, id uint, approvedBy string, bankAmount *float64) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	now := time.Now().UTC()
	receipt.Approved = true
	receipt.ApprovedBy = &approvedBy
	receipt.ApprovedAt = &now
	if bankAmount != nil {
		receipt.BankAmount = bankAmount
	}

	if err := s.receiptRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// DeleteReceipt removes a receipt permanently.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id uint) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}
	return s.receiptRepo.Delete(ctx, id)
}

// GetStats aggregates the receipt population, optionally restricted to a
// branch and a creating user.
func (s *ReceiptService) GetStats(ctx context.Context, branch, createdBy string) (*repository.ReceiptStats, error) {
	return s.receiptRepo.Stats(ctx, branch, createdBy)
}
