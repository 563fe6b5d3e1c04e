package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/middleware"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// currentUserID returns the authenticated user id, writing the 401
// response itself when the auth middleware did not run.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication required"))
		return "", false
	}
	return id, true
}

// bindJSON decodes the body, writing the 400 response on failure.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid request body"))
		return false
	}
	return true
}
