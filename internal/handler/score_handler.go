package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// ScoreHandler exposes the score read endpoint.
type ScoreHandler struct {
	scores *service.ScoreService
}

// NewScoreHandler constructs a ScoreHandler.
func NewScoreHandler(scores *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scores: scores}
}

// List godoc
// @Summary      List scores
// @Tags         Scores
// @Produce      json
// @Security     BearerAuth
// @Param        classId query string false "Filter by class"
// @Param        subject query string false "Filter by subject"
// @Param        type query string false "Filter by assessment type"
// @Success      200 {array} models.Score
// @Router       /scores [get]
func (h *ScoreHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := models.ScoreFilter{
		ClassID: c.Query("classId"),
		Subject: c.Query("subject"),
		Type:    c.Query("type"),
	}
	scores, err := h.scores.List(c.Request.Context(), userID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, scores)
}
