package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unitedfert/receipts-api/internal/application/service"
	"github.com/unitedfert/receipts-api/internal/presentation/http/dto/response"
	"github.com/unitedfert/receipts-api/pkg/apperror"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles credential verification
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		appErr := apperror.GetAppError(err)
		if appErr.Code == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   appErr.Message,
			})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"message": "Login successful",
	})
}
