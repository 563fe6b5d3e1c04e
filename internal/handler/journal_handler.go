package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// JournalHandler exposes teaching journal endpoints.
type JournalHandler struct {
	journals *service.JournalService
}

// NewJournalHandler constructs a JournalHandler.
func NewJournalHandler(journals *service.JournalService) *JournalHandler {
	return &JournalHandler{journals: journals}
}

// List godoc
// @Summary      List journal entries, newest first
// @Tags         Journals
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Journal
// @Router       /journals [get]
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	journals, err := h.journals.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, journals)
}

// Save godoc
// @Summary      Create or replace a journal entry
// @Tags         Journals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body service.JournalRequest true "Journal entry"
// @Success      200 {object} models.Journal
// @Router       /journals [post]
func (h *JournalHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.JournalRequest
	if !bindJSON(c, &req) {
		return
	}

	journal, err := h.journals.Save(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, journal)
}

// Delete godoc
// @Summary      Delete a journal entry
// @Tags         Journals
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Journal id"
// @Success      200 {object} map[string]bool
// @Router       /journals/{id} [delete]
func (h *JournalHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.journals.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
