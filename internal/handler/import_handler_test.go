package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduguru-api/internal/middleware"
	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/internal/service"
)

type recordingImportRepo struct {
	attendance []models.Attendance
}

func (r *recordingImportRepo) UpsertClasses(context.Context, []models.Class) error    { return nil }
func (r *recordingImportRepo) UpsertStudents(context.Context, []models.Student) error { return nil }
func (r *recordingImportRepo) InsertSubjects(context.Context, []string, string) error { return nil }

func (r *recordingImportRepo) UpsertAttendance(_ context.Context, records []models.Attendance) error {
	r.attendance = append(r.attendance, records...)
	return nil
}

func (r *recordingImportRepo) UpsertScores(context.Context, []models.Score) error { return nil }

func (r *recordingImportRepo) SyncMaster(context.Context, []models.Class, []models.Student, []string, string) error {
	return nil
}

func newImportTestRouter(t *testing.T, repo *recordingImportRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	imports := service.NewImportService(repo, nil, nil, nil, nil, "")
	h := NewImportHandler(imports)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u1")
	})
	router.POST("/api/attendance/bulk", h.Attendance)
	return router
}

func TestAttendanceBulkReadsRecordsKey(t *testing.T) {
	repo := &recordingImportRepo{}
	router := newImportTestRouter(t, repo)

	body := `{"records":[{"date":"2026-02-10","studentId":"s1","classId":"C1A","subject":"Matematika","status":"H"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/bulk", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result service.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Imported)

	require.Len(t, repo.attendance, 1)
	assert.Equal(t, "2026-02-10_C1A_Matematika_s1", repo.attendance[0].ID)
	assert.Equal(t, "u1", repo.attendance[0].UserID)
}
