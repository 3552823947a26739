package http

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// APIKeyMiddleware rejects requests whose Authorization header does not
// carry the configured bearer token. Comparison is constant-time.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			respondUnauthorized(c, "missing bearer token")
			return
		}

		token := header[len(bearerPrefix):]
		if subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			respondUnauthorized(c, "invalid API key")
			return
		}

		c.Next()
	}
}
