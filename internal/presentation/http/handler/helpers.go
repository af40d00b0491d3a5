package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unitedfert/receipts-api/internal/presentation/http/dto/response"
)

// parseID extracts the numeric id path parameter, answering 400 itself when
// the value is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
