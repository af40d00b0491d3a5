package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags every request with an X-Request-ID, echoing the caller's
// id when one is supplied, and writes a single summary line once the handler
// chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Printf("%s %s -> %d (%s) ip=%s id=%s",
			c.Request.Method,
			c.Request.URL.RequestURI(),
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			requestID,
		)
		for _, e := range c.Errors {
			log.Printf("request %s failed: %v", requestID, e.Err)
		}
	}
}
