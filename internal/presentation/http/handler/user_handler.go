package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unitedfert/receipts-api/internal/application/service"
	"github.com/unitedfert/receipts-api/internal/presentation/http/dto/response"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing active users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Create handles creating a user
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Username   string  `json:"username"`
		Code       string  `json:"code"`
		Password   string  `json:"password"`
		Role       string  `json:"role"`
		Branch     string  `json:"branch"`
		LastSerial *int    `json:"lastSerial"`
		StorageURL *string `json:"storageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		Username:   req.Username,
		Code:       req.Code,
		Password:   req.Password,
		Role:       req.Role,
		Branch:     req.Branch,
		LastSerial: req.LastSerial,
		StorageURL: req.StorageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Get handles getting a single user
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update handles partially updating a user
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Username   *string `json:"username"`
		Code       *string `json:"code"`
		Password   *string `json:"password"`
		Role       *string `json:"role"`
		Branch     *string `json:"branch"`
		LastSerial *int    `json:"lastSerial"`
		StorageURL *string `json:"storageUrl"`
		Active     *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, &service.UpdateUserInput{
		Username:   req.Username,
		Code:       req.Code,
		Password:   req.Password,
		Role:       req.Role,
		Branch:     req.Branch,
		LastSerial: req.LastSerial,
		StorageURL: req.StorageURL,
		Active:     req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete handles deactivating a user (soft delete)
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.DeactivateUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// UpdateSerial handles overwriting the user's last issued serial
func (h *UserHandler) UpdateSerial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		LastSerial *int `json:"lastSerial"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Absent lastSerial is a no-op that still returns the current record.
	if req.LastSerial == nil {
		user, err := h.userService.GetUser(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	user, err := h.userService.SetLastSerial(c.Request.Context(), id, *req.LastSerial)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
