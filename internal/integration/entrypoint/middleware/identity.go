// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/piggybank/backend/internal/application/adapter"
)

// ContextKey is a type for context keys.
type ContextKey string

// DisplayNameKey is the context key for the resolved display name.
const DisplayNameKey ContextKey = "display_name"

// IdentityMiddleware resolves an optional bearer token into a display name.
// Identity is cosmetic: a missing or invalid token never blocks a request,
// it just leaves the name unset.
type IdentityMiddleware struct {
	identityService adapter.IdentityService
}

// NewIdentityMiddleware creates a new identity middleware instance.
func NewIdentityMiddleware(identityService adapter.IdentityService) *IdentityMiddleware {
	return &IdentityMiddleware{identityService: identityService}
}

// Resolve returns a Gin middleware handler that stores the display name in
// the request context when a valid token is presented.
func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.Next()
			return
		}

		name, err := m.identityService.DisplayName(c.Request.Context(), token)
		if err == nil && name != "" {
			c.Set(string(DisplayNameKey), name)
		}

		c.Next()
	}
}

// GetDisplayNameFromContext retrieves the resolved display name, if any.
func GetDisplayNameFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(string(DisplayNameKey))
	if !exists {
		return "", false
	}
	name, ok := value.(string)
	return name, ok && name != ""
}
