package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// StudentHandler exposes student master-data endpoints.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary      List the owner's students
// @Tags         Students
// @Produce      json
// @Security     BearerAuth
// @Param        classId query string false "Filter by class"
// @Success      200 {array} models.StudentRecord
// @Router       /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := models.StudentFilter{ClassID: c.Query("classId")}
	students, err := h.students.List(c.Request.Context(), userID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// Create godoc
// @Summary      Create a student
// @Tags         Students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body service.StudentRequest true "Student"
// @Success      200 {object} models.Student
// @Router       /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.StudentRequest
	if !bindJSON(c, &req) {
		return
	}

	student, err := h.students.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Update godoc
// @Summary      Update a student
// @Tags         Students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Student id"
// @Param        request body service.StudentRequest true "Student"
// @Success      200 {object} models.Student
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.StudentRequest
	if !bindJSON(c, &req) {
		return
	}

	student, err := h.students.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Delete godoc
// @Summary      Delete a student and their history
// @Tags         Students
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Student id"
// @Success      200 {object} map[string]bool
// @Router       /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.students.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// DeleteAll godoc
// @Summary      Delete every student the user owns
// @Tags         Students
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]bool
// @Router       /students [delete]
func (h *StudentHandler) DeleteAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.students.DeleteAll(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
