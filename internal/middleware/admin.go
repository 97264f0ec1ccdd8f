package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/pkg/response"
)

// AdminKey gates admin routes on the X-Admin-Key header matching one of
// the configured keys.
func AdminKey(keys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-Admin-Key")
		if got != "" {
			for _, k := range keys {
				if subtle.ConstantTimeCompare([]byte(got), []byte(k)) == 1 {
					c.Next()
					return
				}
			}
		}
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin key required")
		c.Abort()
	}
}
