package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/service"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// Context keys populated by the auth middleware.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextUserRole = "userRole"
)

type tokenValidator interface {
	ValidateToken(token string) (*service.TokenClaims, error)
}

// JWT requires a valid bearer token and stores the identity on the context.
func JWT(validator tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication required"))
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextUserRole, string(claims.Role))
		c.Next()
	}
}

// OptionalJWT stores the identity when a valid token is present but never
// rejects the request.
func OptionalJWT(validator tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := validator.ValidateToken(token); err == nil {
				c.Set(ContextUserID, claims.ID)
				c.Set(ContextUsername, claims.Username)
				c.Set(ContextUserRole, string(claims.Role))
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
