package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"textgate/internal/domain/entity"
)

// Context keys set by the auth middleware.
const (
	UserContextKey  = "current_user"
	TokenContextKey = "session_token"
)

// ExtractBearerToken pulls the token out of the Authorization header.
// Returns an empty string when the header is absent or not a bearer scheme.
func ExtractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// CurrentUser returns the authenticated user placed in the context by the
// auth middleware, or nil when the route is unauthenticated.
func CurrentUser(c *gin.Context) *entity.User {
	value, ok := c.Get(UserContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*entity.User)
	if !ok {
		return nil
	}
	return user
}

// SessionToken returns the bearer token of the current request.
func SessionToken(c *gin.Context) string {
	return c.GetString(TokenContextKey)
}
