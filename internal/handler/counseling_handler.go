package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// CounselingHandler exposes counseling session endpoints.
type CounselingHandler struct {
	counseling *service.CounselingService
}

// NewCounselingHandler constructs a CounselingHandler.
func NewCounselingHandler(counseling *service.CounselingService) *CounselingHandler {
	return &CounselingHandler{counseling: counseling}
}

// List godoc
// @Summary      List counseling sessions, newest first
// @Tags         Counseling
// @Produce      json
// @Security     BearerAuth
// @Param        studentId query string false "Filter by student"
// @Success      200 {array} models.CounselingRecord
// @Router       /counseling [get]
func (h *CounselingHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessions, err := h.counseling.List(c.Request.Context(), userID, c.Query("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sessions)
}

// Save godoc
// @Summary      Create or update a counseling session
// @Tags         Counseling
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body service.CounselingRequest true "Session"
// @Success      200 {object} models.Counseling
// @Router       /counseling [post]
func (h *CounselingHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CounselingRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.counseling.Save(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, session)
}

// Delete godoc
// @Summary      Delete a counseling session
// @Tags         Counseling
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session id"
// @Success      200 {object} map[string]bool
// @Router       /counseling/{id} [delete]
func (h *CounselingHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.counseling.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
