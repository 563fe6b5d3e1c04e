package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/service"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// OAuthHandler exposes the provider login redirects and callbacks.
type OAuthHandler struct {
	oauth     *service.OAuthService
	clientURL string
}

// NewOAuthHandler constructs an OAuthHandler.
func NewOAuthHandler(oauth *service.OAuthService, clientURL string) *OAuthHandler {
	return &OAuthHandler{oauth: oauth, clientURL: clientURL}
}

// Authorize godoc
// @Summary      Redirect to the identity provider consent screen
// @Tags         Auth
// @Param        provider path string true "google, github or microsoft"
// @Success      302
// @Failure      400 {object} map[string]string
// @Router       /auth/{provider} [get]
func (h *OAuthHandler) Authorize(c *gin.Context) {
	provider := c.Param("provider")
	if !h.oauth.Enabled(provider) {
		response.Error(c, appErrors.New(appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "Unknown or unconfigured provider"))
		return
	}

	target, err := h.oauth.AuthorizeURL(provider)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, target)
}

// Callback godoc
// @Summary      Complete the provider login and redirect to the client app
// @Tags         Auth
// @Param        provider path string true "google, github or microsoft"
// @Param        code query string true "Authorization code"
// @Param        state query string true "Signed state token"
// @Success      302
// @Router       /auth/{provider}/callback [get]
func (h *OAuthHandler) Callback(c *gin.Context) {
	provider := c.Param("provider")
	target, err := h.oauth.HandleCallback(c.Request.Context(), provider, c.Query("code"), c.Query("state"))
	if err != nil {
		// the browser is mid-redirect, so surface the failure on the client app
		appErr := appErrors.FromError(err)
		q := url.Values{}
		q.Set("error", appErr.Message)
		c.Redirect(http.StatusFound, strings.TrimRight(h.clientURL, "/")+"/?"+q.Encode())
		return
	}
	c.Redirect(http.StatusFound, target)
}
