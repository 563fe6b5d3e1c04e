package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// ClassHandler exposes class master-data endpoints.
type ClassHandler struct {
	classes *service.ClassService
}

// NewClassHandler constructs a ClassHandler.
func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// List godoc
// @Summary      List the owner's classes
// @Tags         Classes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Class
// @Router       /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	classes, err := h.classes.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// Create godoc
// @Summary      Create a class
// @Tags         Classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body service.ClassRequest true "Class"
// @Success      200 {object} models.Class
// @Router       /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.ClassRequest
	if !bindJSON(c, &req) {
		return
	}

	class, err := h.classes.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// Update godoc
// @Summary      Update a class
// @Tags         Classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class id"
// @Param        request body service.ClassRequest true "Class"
// @Success      200 {object} models.Class
// @Router       /classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.ClassRequest
	if !bindJSON(c, &req) {
		return
	}

	class, err := h.classes.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// Delete godoc
// @Summary      Delete a class
// @Tags         Classes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class id"
// @Success      200 {object} map[string]bool
// @Router       /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.classes.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// DeleteAll godoc
// @Summary      Delete every class the user owns
// @Tags         Classes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]bool
// @Router       /classes [delete]
func (h *ClassHandler) DeleteAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.classes.DeleteAll(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
