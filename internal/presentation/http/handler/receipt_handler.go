package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unitedfert/receipts-api/internal/application/service"
	"github.com/unitedfert/receipts-api/internal/domain/entity"
	domainRepo "github.com/unitedfert/receipts-api/internal/domain/repository"
	"github.com/unitedfert/receipts-api/internal/presentation/http/dto/response"
	"github.com/unitedfert/receipts-api/pkg/pagination"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// List handles listing receipts with filters and pagination
func (h *ReceiptHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	params := &pagination.Params{Page: page, PerPage: perPage}

	filter := &domainRepo.ReceiptFilter{
		Branch:    c.Query("branch"),
		Method:    c.Query("method"),
		Bank:      c.Query("bank"),
		Reason:    c.Query("reason"),
		Search:    c.Query("search"),
		CreatedBy: c.Query("created_by"),
	}
	if from := c.Query("date_from"); from != "" {
		date, err := entity.ParseDate(from)
		if err != nil {
			response.BadRequest(c, "Invalid date_from")
			return
		}
		filter.DateFrom = &date
	}
	if to := c.Query("date_to"); to != "" {
		date, err := entity.ParseDate(to)
		if err != nil {
			response.BadRequest(c, "Invalid date_to")
			return
		}
		filter.DateTo = &date
	}

	receipts, pag, err := h.receiptService.ListReceipts(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipts":     receipts,
		"total":        pag.Total,
		"pages":        pag.TotalPages,
		"current_page": pag.CurrentPage,
		"per_page":     pag.PerPage,
	})
}

type receiptRequest struct {
	Number     int                `json:"number"`
	ClientID   string             `json:"clientId"`
	ClientName string             `json:"clientName"`
	Amount     float64            `json:"amount"`
	BankAmount *float64           `json:"bankAmount"`
	Tafqeet    string             `json:"tafqeet"`
	Method     string             `json:"method"`
	Bank       string             `json:"bank"`
	Reason     string             `json:"reason"`
	Branch     string             `json:"branch"`
	Invoices   entity.InvoiceList `json:"invoices"`
	CreatedBy  string             `json:"createdBy"`
	Date       *entity.Date       `json:"date"`
	Attachment string             `json:"attachment"`
	Approved   bool               `json:"approved"`
	ApprovedBy *string            `json:"approvedBy"`
	ApprovedAt *time.Time         `json:"approvedAt"`
}

// Create handles creating a receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), &service.CreateReceiptInput{
		Number:     req.Number,
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Amount:     req.Amount,
		BankAmount: req.BankAmount,
		Tafqeet:    req.Tafqeet,
		Method:     req.Method,
		Bank:       req.Bank,
		Reason:     req.Reason,
		Branch:     req.Branch,
		Invoices:   req.Invoices,
		CreatedBy:  req.CreatedBy,
		Date:       req.Date,
		Attachment: req.Attachment,
		Approved:   req.Approved,
		ApprovedBy: req.ApprovedBy,
		ApprovedAt: req.ApprovedAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// Get handles getting a single receipt
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// Update handles partially updating a receipt
func (h *ReceiptHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		ClientID   *string             `json:"clientId"`
		ClientName *string             `json:"clientName"`
		Amount     *float64            `json:"amount"`
		BankAmount *float64            `json:"bankAmount"`
		Tafqeet    *string             `json:"tafqeet"`
		Method     *string             `json:"method"`
		Bank       *string             `json:"bank"`
		Reason     *string             `json:"reason"`
		Branch     *string             `json:"branch"`
		Invoices   *entity.InvoiceList `json:"invoices"`
		Attachment *string             `json:"attachment"`
		Approved   *bool               `json:"approved"`
		ApprovedBy *string             `json:"approvedBy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), id, &service.UpdateReceiptInput{
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Amount:     req.Amount,
		BankAmount: req.BankAmount,
		Tafqeet:    req.Tafqeet,
		Method:     req.Method,
		Bank:       req.Bank,
		Reason:     req.Reason,
		Branch:     req.Branch,
		Invoices:   req.Invoices,
		Attachment: req.Attachment,
		Approved:   req.Approved,
		ApprovedBy: req.ApprovedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// Approve handles the approval transition
func (h *ReceiptHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		ApprovedBy string   `json:"approvedBy"`
		BankAmount *float64 `json:"bankAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.ApproveReceipt(c.Request.Context(), id, req.ApprovedBy, req.BankAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// Delete handles deleting a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Receipt deleted successfully"})
}

// Stats handles the aggregate statistics endpoint
func (h *ReceiptHandler) Stats(c *gin.Context) {
	stats, err := h.receiptService.GetStats(c.Request.Context(), c.Query("branch"), c.Query("created_by"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
