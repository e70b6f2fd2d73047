package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"codedrop-app/config"

	"github.com/gin-gonic/gin"
)

// RequireAdminKey guards the operator API with the static key from
// ADMIN_API_KEY, presented as a bearer token.
func RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := config.ADMIN_API_KEY
		if key == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin key not configured"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		presented := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || presented == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}
