package middleware

import (
	"crypto/subtle"
	"net/http"

	"rental-chat-service/internal/models"

	"github.com/gin-gonic/gin"
)

const InternalKeyHeader = "X-Internal-Key"

// RequireInternalKey guards server-to-server routes. An empty key disables them.
func RequireInternalKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(InternalKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid internal key",
			})
			return
		}
		c.Next()
	}
}
