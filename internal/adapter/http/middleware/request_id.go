package middleware

import (
	"gateway_reservas/internal/config"
	"gateway_reservas/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxRequestIDLen = 128

// RequestID propagates X-Request-ID, generating one when the caller sent none.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := config.Sanitize(c.GetHeader(pkg.RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Request = c.Request.WithContext(pkg.WithRequestID(c.Request.Context(), id))
		c.Writer.Header().Set(pkg.RequestIDHeader, id)
		c.Next()
	}
}
