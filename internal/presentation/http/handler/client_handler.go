package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unitedfert/receipts-api/internal/application/service"
	"github.com/unitedfert/receipts-api/internal/presentation/http/dto/response"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles listing all clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// Create handles creating a client
func (h *ClientHandler) Create(c *gin.Context) {
	var req struct {
		ClientID string `json:"clientId"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		Address  string `json:"address"`
		Branch   string `json:"branch"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &service.CreateClientInput{
		ClientID: req.ClientID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Branch:   req.Branch,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// Get handles getting a client by its business identifier
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clientService.GetClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}
