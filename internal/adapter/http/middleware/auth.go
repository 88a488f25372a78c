package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"textgate/internal/adapter/http/handler"
	"textgate/internal/usecase"
)

// BearerAuth validates the Authorization bearer token and places the
// resolved user in the request context. A missing, unknown or expired
// token yields 401, which clients treat as a forced logout.
func BearerAuth(authUC usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handler.ExtractBearerToken(c)
		user, err := authUC.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": usecase.ErrSessionInvalid.Error(),
			})
			return
		}

		c.Set(handler.UserContextKey, user)
		c.Set(handler.TokenContextKey, token)
		c.Next()
	}
}
