package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/pkg/config"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
	"github.com/noah-isme/eduguru-api/pkg/signing"
)

const (
	ProviderGoogle    = "google"
	ProviderGitHub    = "github"
	ProviderMicrosoft = "microsoft"
)

type oauthUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user models.User) error
}

type tokenIssuer interface {
	IssueToken(id, username string, role models.UserRole) (string, error)
}

// oauthProfile is the normalized identity extracted from a provider.
type oauthProfile struct {
	Email  string
	Name   string
	Avatar string
}

// OAuthService drives the authorization-code flow for the supported
// identity providers and maps provider identities onto local accounts.
type OAuthService struct {
	repo   oauthUserRepository
	issuer tokenIssuer
	signer *signing.StateSigner
	config config.OAuthConfig
	client *http.Client
	logger *zap.Logger
}

// NewOAuthService constructs an OAuthService.
func NewOAuthService(repo oauthUserRepository, issuer tokenIssuer, signer *signing.StateSigner, cfg config.OAuthConfig, logger *zap.Logger) *OAuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OAuthService{
		repo:   repo,
		issuer: issuer,
		signer: signer,
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

// Enabled reports whether the provider has credentials configured.
func (s *OAuthService) Enabled(provider string) bool {
	switch provider {
	case ProviderGoogle:
		return s.config.Google.ClientID != "" && s.config.Google.ClientSecret != ""
	case ProviderGitHub:
		return s.config.GitHub.ClientID != "" && s.config.GitHub.ClientSecret != ""
	case ProviderMicrosoft:
		return s.config.Microsoft.ClientID != "" && s.config.Microsoft.ClientSecret != ""
	default:
		return false
	}
}

// AuthorizeURL builds the provider consent URL with a signed state token.
func (s *OAuthService) AuthorizeURL(provider string) (string, error) {
	if !s.Enabled(provider) {
		return "", appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status,
			fmt.Sprintf("%s login is not configured", provider))
	}

	state, err := s.signer.Generate(provider)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	redirect := s.redirectURI(provider)
	params := url.Values{}
	params.Set("state", state)
	params.Set("redirect_uri", redirect)

	switch provider {
	case ProviderGoogle:
		params.Set("client_id", s.config.Google.ClientID)
		params.Set("response_type", "code")
		params.Set("scope", "openid email profile")
		params.Set("access_type", "offline")
		return "https://accounts.google.com/o/oauth2/v2/auth?" + params.Encode(), nil
	case ProviderGitHub:
		params.Set("client_id", s.config.GitHub.ClientID)
		params.Set("scope", "read:user user:email")
		return "https://github.com/login/oauth/authorize?" + params.Encode(), nil
	case ProviderMicrosoft:
		params.Set("client_id", s.config.Microsoft.ClientID)
		params.Set("response_type", "code")
		params.Set("scope", "openid email profile User.Read")
		params.Set("response_mode", "query")
		return "https://login.microsoftonline.com/common/oauth2/v2.0/authorize?" + params.Encode(), nil
	default:
		return "", appErrors.Clone(appErrors.ErrNotFound, "Unknown provider")
	}
}

// HandleCallback validates the state, exchanges the code, resolves the
// provider profile and returns the post-login redirect to the client app.
func (s *OAuthService) HandleCallback(ctx context.Context, provider, code, state string) (string, error) {
	got, err := s.signer.Validate(state)
	if err != nil || got != provider {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "Invalid OAuth state")
	}
	if code == "" {
		return "", appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing authorization code")
	}

	accessToken, err := s.exchangeCode(ctx, provider, code)
	if err != nil {
		s.logger.Error("oauth code exchange failed", zap.String("provider", provider), zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "OAuth sign-in failed")
	}

	profile, err := s.fetchProfile(ctx, provider, accessToken)
	if err != nil {
		s.logger.Error("oauth profile fetch failed", zap.String("provider", provider), zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "OAuth sign-in failed")
	}

	user, err := s.findOrCreate(ctx, profile)
	if err != nil {
		return "", err
	}

	token, err := s.issuer.IssueToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	q := url.Values{}
	q.Set("token", token)
	q.Set("user", string(payload))
	return strings.TrimRight(s.config.ClientURL, "/") + "/?" + q.Encode(), nil
}

func (s *OAuthService) redirectURI(provider string) string {
	return strings.TrimRight(s.config.APIURL, "/") + "/api/auth/" + provider + "/callback"
}

func (s *OAuthService) exchangeCode(ctx context.Context, provider, code string) (string, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("redirect_uri", s.redirectURI(provider))

	var tokenURL string
	switch provider {
	case ProviderGoogle:
		tokenURL = "https://oauth2.googleapis.com/token"
		form.Set("client_id", s.config.Google.ClientID)
		form.Set("client_secret", s.config.Google.ClientSecret)
		form.Set("grant_type", "authorization_code")
	case ProviderGitHub:
		tokenURL = "https://github.com/login/oauth/access_token"
		form.Set("client_id", s.config.GitHub.ClientID)
		form.Set("client_secret", s.config.GitHub.ClientSecret)
	case ProviderMicrosoft:
		tokenURL = "https://login.microsoftonline.com/common/oauth2/v2.0/token"
		form.Set("client_id", s.config.Microsoft.ClientID)
		form.Set("client_secret", s.config.Microsoft.ClientSecret)
		form.Set("grant_type", "authorization_code")
	default:
		return "", fmt.Errorf("unknown provider %q", provider)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.Error != "" {
		return "", fmt.Errorf("token endpoint error: %s", payload.Error)
	}
	if payload.AccessToken == "" {
		return "", errors.New("token response missing access_token")
	}
	return payload.AccessToken, nil
}

func (s *OAuthService) fetchProfile(ctx context.Context, provider, accessToken string) (*oauthProfile, error) {
	switch provider {
	case ProviderGoogle:
		return s.fetchGoogleProfile(ctx, accessToken)
	case ProviderGitHub:
		return s.fetchGitHubProfile(ctx, accessToken)
	case ProviderMicrosoft:
		return s.fetchMicrosoftProfile(ctx, accessToken)
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

func (s *OAuthService) fetchGoogleProfile(ctx context.Context, accessToken string) (*oauthProfile, error) {
	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := s.getJSON(ctx, "https://www.googleapis.com/oauth2/v2/userinfo", accessToken, &info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, errors.New("google profile has no email")
	}
	return &oauthProfile{Email: info.Email, Name: info.Name, Avatar: info.Picture}, nil
}

func (s *OAuthService) fetchGitHubProfile(ctx context.Context, accessToken string) (*oauthProfile, error) {
	var info struct {
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := s.getJSON(ctx, "https://api.github.com/user", accessToken, &info); err != nil {
		return nil, err
	}

	email := info.Email
	if email == "" {
		// the public email may be hidden; fall back to the primary address
		var emails []struct {
			Email   string `json:"email"`
			Primary bool   `json:"primary"`
		}
		if err := s.getJSON(ctx, "https://api.github.com/user/emails", accessToken, &emails); err == nil {
			for _, e := range emails {
				if e.Primary {
					email = e.Email
					break
				}
			}
		}
	}
	if email == "" {
		email = info.Login + "@github.com"
	}

	name := info.Name
	if name == "" {
		name = info.Login
	}
	return &oauthProfile{Email: email, Name: name, Avatar: info.AvatarURL}, nil
}

func (s *OAuthService) fetchMicrosoftProfile(ctx context.Context, accessToken string) (*oauthProfile, error) {
	var info struct {
		DisplayName       string `json:"displayName"`
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
	}
	if err := s.getJSON(ctx, "https://graph.microsoft.com/v1.0/me", accessToken, &info); err != nil {
		return nil, err
	}

	email := info.Mail
	if email == "" {
		email = info.UserPrincipalName
	}
	if email == "" {
		return nil, errors.New("microsoft profile has no email")
	}
	name := info.DisplayName
	if name == "" {
		name = email
	}
	return &oauthProfile{Email: email, Name: name, Avatar: avatarURL(name, "00A4EF")}, nil
}

func (s *OAuthService) getJSON(ctx context.Context, endpoint, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d", endpoint, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read profile response: %w", err)
	}
	return json.Unmarshal(body, out)
}

func (s *OAuthService) findOrCreate(ctx context.Context, profile *oauthProfile) (*models.PublicUser, error) {
	existing, err := s.repo.FindByUsername(ctx, profile.Email)
	if err == nil {
		public := existing.Public()
		return &public, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	avatar := profile.Avatar
	if avatar == "" {
		avatar = avatarURL(profile.Name, "22c55e")
	}
	user := models.User{
		ID:           models.GenerateID("user"),
		Username:     profile.Email,
		PasswordHash: models.OAuthPasswordSentinel,
		Name:         profile.Name,
		Role:         models.DefaultUserRole,
		Avatar:       &avatar,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("oauth account creation failed", zap.String("username", profile.Email), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("oauth account created", zap.String("user_id", user.ID))
	public := user.Public()
	return &public, nil
}
