package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/middleware"
	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/internal/repository"
	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/config"
)

type stubUserRepo struct{}

func (stubUserRepo) FindByUsername(context.Context, string) (*models.User, error) {
	return nil, sql.ErrNoRows
}

func (stubUserRepo) FindByID(context.Context, string) (*models.PublicUser, error) {
	return nil, sql.ErrNoRows
}

func (stubUserRepo) UsernameExists(context.Context, string) (bool, error) { return false, nil }
func (stubUserRepo) Create(context.Context, models.User) error            { return nil }
func (stubUserRepo) PasswordHash(context.Context, string) (string, error) {
	return "", sql.ErrNoRows
}

func (stubUserRepo) UpdateProfile(context.Context, string, repository.ProfileUpdate) error {
	return nil
}

type stubAttendanceRepo struct {
	records []models.Attendance
}

func (r stubAttendanceRepo) List(context.Context, string, models.AttendanceFilter) ([]models.Attendance, error) {
	return r.records, nil
}

type stubCounselingRepo struct{}

func (stubCounselingRepo) List(context.Context, string, string) ([]models.CounselingRecord, error) {
	return nil, nil
}

func (stubCounselingRepo) Upsert(context.Context, models.Counseling) error { return nil }

func (stubCounselingRepo) Delete(context.Context, string, string) error { return nil }

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func newTestRouter(t *testing.T, attendance []models.Attendance) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Env: "test", APIPrefix: "/api"}
	auth := service.NewAuthService(stubUserRepo{}, nil, nil, service.AuthConfig{Secret: "test-secret"})

	handlers := Handlers{
		Auth:       NewAuthHandler(auth),
		OAuth:      NewOAuthHandler(service.NewOAuthService(stubUserRepo{}, auth, nil, config.OAuthConfig{}, nil), ""),
		Attendance: NewAttendanceHandler(service.NewAttendanceService(stubAttendanceRepo{records: attendance}, nil)),
		Counseling: NewCounselingHandler(service.NewCounselingService(stubCounselingRepo{}, nil, nil)),
		Health:     NewHealthHandler(nil, nil),
	}
	router := NewRouter(cfg, zap.NewNop(), nil, middleware.JWT(auth), middleware.OptionalJWT(auth), handlers)
	return router, auth
}

func TestAPIHealthPing(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestUnknownRouteReturnsCanonicalNotFound(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"API endpoint not found"}`, w.Body.String())
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
}

func TestProtectedRouteServesWithValidToken(t *testing.T) {
	date, err := models.ParseDate("2026-02-10")
	require.NoError(t, err)
	router, auth := newTestRouter(t, []models.Attendance{
		{ID: "2026-02-10_CX1AB_Fisika_s1", Date: date, StudentID: "s1", ClassID: "CX1AB", Subject: "Fisika", Status: models.AttendancePresent, UserID: "u1"},
	})

	token, err := auth.IssueToken("u1", "bu.siti", models.RoleTeacher)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance?classId=CX1AB", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var records []models.Attendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendancePresent, records[0].Status)
	assert.Equal(t, "2026-02-10", records[0].Date.String())
}

func TestHealthHidesDependencyDetailFromAnonymous(t *testing.T) {
	router, auth := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var anon map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &anon))
	assert.NotEmpty(t, anon["status"])
	assert.NotContains(t, anon, "db")
	assert.NotContains(t, anon, "ai")

	token, err := auth.IssueToken("u1", "bu.siti", models.RoleTeacher)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var detailed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detailed))
	assert.Equal(t, "not configured", detailed["db"])
	assert.Equal(t, "disabled", detailed["ai"])
}

func TestCounselingRejectsUnknownRoleClaim(t *testing.T) {
	router, auth := newTestRouter(t, nil)

	token, err := auth.IssueToken("u1", "bu.siti", models.UserRole("INTRUDER"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/counseling", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Insufficient permissions"}`, w.Body.String())
}

func TestCounselingServesKnownRoles(t *testing.T) {
	router, auth := newTestRouter(t, nil)

	token, err := auth.IssueToken("u1", "bu.siti", models.RoleCounselor)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/counseling", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(`{"username":"ghost","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid username or password"}`, w.Body.String())
}
