package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
	"github.com/aditya26raj01/status-app-backend/pkg/token"
)

// contextKeyUser is the gin context key carrying the resolved identity
const contextKeyUser = "current_user"

// DefaultBypassPrefixes are the path prefixes reachable without
// authentication, checked in order; the first match wins.
var DefaultBypassPrefixes = []string{
	"/org/get-org-by-domain",
	"/user/sync-user-to-db",
	"/status/get-org-status",
}

// UserResolver looks up the persisted account for a verified claim
type UserResolver interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AuthConfig holds configuration for the auth middleware
type AuthConfig struct {
	Verifier token.Verifier
	Users    UserResolver
	// BypassPrefixes overrides DefaultBypassPrefixes when non-nil
	BypassPrefixes []string
}

// AuthMiddleware authenticates every request outside the bypass list: it
// extracts the bearer token, verifies it, resolves the account by the claim's
// email, and stores the identity in the request context. Token failures and
// unknown accounts both produce the same generic 401 so callers cannot probe
// which accounts exist.
func AuthMiddleware(cfg *AuthConfig) gin.HandlerFunc {
	bypass := cfg.BypassPrefixes
	if bypass == nil {
		bypass = DefaultBypassPrefixes
	}

	return func(c *gin.Context) {
		for _, prefix := range bypass {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Authorization header is required"))
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Invalid authorization header format"))
			return
		}
		raw := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Invalid authorization header format"))
			return
		}

		claims, err := cfg.Verifier.Verify(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Invalid or expired token"))
			return
		}

		user, err := cfg.Users.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.InternalError(""))
			return
		}
		if user == nil {
			// same body as the token failure above, on purpose
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Invalid or expired token"))
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser stores the identity in the request context the way
// AuthMiddleware does. Handler tests use it to run behind-the-gate handlers
// without a full token round trip.
func SetCurrentUser(c *gin.Context, u *domain.User) {
	c.Set(contextKeyUser, u)
}

// CurrentUser returns the identity resolved by AuthMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(contextKeyUser)
	if !exists {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}

// MustCurrentUser returns the resolved identity or aborts with 401. Handlers
// behind AuthMiddleware use this instead of re-checking the header.
func MustCurrentUser(c *gin.Context) (*domain.User, bool) {
	u, ok := CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized(""))
		return nil, false
	}
	return u, true
}
