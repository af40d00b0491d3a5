package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unitedfert/receipts-api/internal/application/service"
	"github.com/unitedfert/receipts-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles company branding and system list HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetCompany handles reading the company record
func (h *SettingsHandler) GetCompany(c *gin.Context) {
	company, err := h.settingsService.GetCompany(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompany handles partially updating the company record
func (h *SettingsHandler) UpdateCompany(c *gin.Context) {
	var req struct {
		Name   *string `json:"name"`
		Logo   *string `json:"logo"`
		Header *string `json:"header"`
		Footer *string `json:"footer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.settingsService.UpdateCompany(c.Request.Context(), &service.UpdateCompanyInput{
		Name:   req.Name,
		Logo:   req.Logo,
		Header: req.Header,
		Footer: req.Footer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// GetLists handles reading all system lists
func (h *SettingsHandler) GetLists(c *gin.Context) {
	lists, err := h.settingsService.GetLists(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

// UpdateLists handles replacing the supplied system lists
func (h *SettingsHandler) UpdateLists(c *gin.Context) {
	var req map[string][]string
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.settingsService.UpdateLists(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lists updated successfully"})
}
