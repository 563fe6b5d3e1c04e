package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// RequireRole allows only the listed roles past. It must run after JWT.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[string(role)] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if _, ok := allowed[role]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}
