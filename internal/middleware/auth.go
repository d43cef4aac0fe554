package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-app-builder-backend/internal/auth"
	"ai-app-builder-backend/internal/models"
)

// Context keys under which the authenticated identity is stored.
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// Auth extracts and verifies the bearer token and attaches the decoded
// identity to the request context. Rejections are deliberately opaque.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid authorization header"})
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

// BodyLimit caps JSON request bodies. Oversized requests fail during
// binding with a request-too-large error.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
