package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyMiddleware handles API key authentication against a bcrypt hash
type APIKeyMiddleware struct {
	keyHash []byte
}

// NewAPIKeyMiddleware creates a new API key middleware. An empty hash disables the check.
func NewAPIKeyMiddleware(keyHash string) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keyHash: []byte(strings.TrimSpace(keyHash)),
	}
}

// Enabled reports whether requests must carry an API key
func (m *APIKeyMiddleware) Enabled() bool {
	return len(m.keyHash) > 0
}

// APIKeyAuthMiddleware validates the "Authorization: ApiKey <key>" header
func (m *APIKeyMiddleware) APIKeyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Next()
			return
		}

		// Get API key from header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, "ApiKey ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header must use the ApiKey scheme",
			})
			return
		}

		// Extract the API key
		apiKey := strings.TrimSpace(strings.TrimPrefix(authHeader, "ApiKey "))
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid API key format",
			})
			return
		}

		if err := bcrypt.CompareHashAndPassword(m.keyHash, []byte(apiKey)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid API key",
			})
			return
		}

		c.Set("auth_type", "api_key")
		c.Next()
	}
}
