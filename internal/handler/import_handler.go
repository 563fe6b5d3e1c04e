package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// ImportHandler exposes the bulk reconciliation endpoints.
type ImportHandler struct {
	imports *service.ImportService
}

// NewImportHandler constructs an ImportHandler.
func NewImportHandler(imports *service.ImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

type bulkClassesRequest struct {
	Classes []service.ClassImport `json:"classes"`
}

type bulkStudentsRequest struct {
	Students []service.StudentImport `json:"students"`
	Confirm  bool                    `json:"confirm"`
}

type bulkSubjectsRequest struct {
	Subjects []string `json:"subjects"`
}

type bulkAttendanceRequest struct {
	Records []service.AttendanceImport `json:"records"`
}

type bulkScoresRequest struct {
	Scores []service.ScoreImport `json:"scores"`
}

// Classes godoc
// @Summary      Bulk upsert classes
// @Tags         Sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Class batch"
// @Success      200 {object} service.ImportResult
// @Router       /classes/bulk [post]
func (h *ImportHandler) Classes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req bulkClassesRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.imports.ImportClasses(c.Request.Context(), userID, req.Classes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Students godoc
// @Summary      Bulk upsert students
// @Tags         Sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Student batch"
// @Success      200 {object} service.ImportResult
// @Router       /students/bulk [post]
func (h *ImportHandler) Students(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req bulkStudentsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.imports.ImportStudents(c.Request.Context(), userID, req.Students, req.Confirm)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Subjects godoc
// @Summary      Bulk insert subject names
// @Tags         Sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Subject name batch"
// @Success      200 {object} service.ImportResult
// @Router       /subjects/bulk [post]
func (h *ImportHandler) Subjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req bulkSubjectsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.imports.ImportSubjects(c.Request.Context(), userID, req.Subjects)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Attendance godoc
// @Summary      Bulk upsert attendance records
// @Tags         Sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Attendance batch"
// @Success      200 {object} service.ImportResult
// @Router       /attendance/bulk [post]
func (h *ImportHandler) Attendance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req bulkAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.imports.ImportAttendance(c.Request.Context(), userID, req.Records)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Scores godoc
// @Summary      Bulk upsert scores
// @Tags         Sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Score batch"
// @Success      200 {object} service.ImportResult
// @Router       /scores/bulk [post]
func (h *ImportHandler) Scores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req bulkScoresRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.imports.ImportScores(c.Request.Context(), userID, req.Scores)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// SyncMaster godoc
// @Summary      Resync classes, students and subjects in one transaction
// @Tags         Sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body service.MasterSyncRequest true "Master data"
// @Success      200 {object} service.MasterSyncResult
// @Router       /sync/master [post]
func (h *ImportHandler) SyncMaster(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.MasterSyncRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.imports.SyncMaster(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
