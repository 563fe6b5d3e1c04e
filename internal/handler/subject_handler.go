package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// SubjectHandler exposes the subject name list endpoints.
type SubjectHandler struct {
	subjects *service.SubjectService
}

// NewSubjectHandler constructs a SubjectHandler.
func NewSubjectHandler(subjects *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjects: subjects}
}

type subjectRequest struct {
	Name string `json:"name"`
}

// List godoc
// @Summary      List the owner's subject names
// @Tags         Subjects
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} string
// @Router       /subjects [get]
func (h *SubjectHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	names, err := h.subjects.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, names)
}

// Add godoc
// @Summary      Add a subject name
// @Tags         Subjects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Subject name"
// @Success      200 {object} map[string]bool
// @Router       /subjects [post]
func (h *SubjectHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req subjectRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.subjects.Add(c.Request.Context(), userID, req.Name); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// Remove godoc
// @Summary      Remove a subject by name
// @Tags         Subjects
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "Subject name"
// @Success      200 {object} map[string]bool
// @Router       /subjects/{name} [delete]
func (h *SubjectHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.subjects.Remove(c.Request.Context(), userID, c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// RemoveAll godoc
// @Summary      Remove every subject the user owns
// @Tags         Subjects
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]bool
// @Router       /subjects [delete]
func (h *SubjectHandler) RemoveAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.subjects.RemoveAll(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
