package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// AIHandler exposes the assistant endpoints.
type AIHandler struct {
	ai *service.AIService
}

// NewAIHandler constructs an AIHandler.
func NewAIHandler(ai *service.AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

type chatRequest struct {
	Message string                `json:"message" binding:"required"`
	History []service.ChatMessage `json:"history"`
}

type reflectionRequest struct {
	Subject    string `json:"subject"`
	Activities string `json:"activities"`
	Notes      string `json:"notes"`
}

type teachingMethodRequest struct {
	Topic string `json:"topic" binding:"required"`
	Grade string `json:"grade"`
}

type followUpRequest struct {
	Type  string `json:"type"`
	Notes string `json:"notes" binding:"required"`
}

// Chat godoc
// @Summary      Ask the assistant
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Message and optional history"
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req chatRequest
	if !bindJSON(c, &req) {
		return
	}

	reply, err := h.ai.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"reply": reply})
}

// Reflection godoc
// @Summary      Generate a journal reflection
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Journal details"
// @Success      200 {object} map[string]string
// @Router       /ai/reflection [post]
func (h *AIHandler) Reflection(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req reflectionRequest
	if !bindJSON(c, &req) {
		return
	}

	text, err := h.ai.Reflection(c.Request.Context(), req.Subject, req.Activities, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"reflection": text})
}

// TeachingMethods godoc
// @Summary      Suggest teaching methods for a topic
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Topic and grade"
// @Success      200 {object} map[string]string
// @Router       /ai/teaching-methods [post]
func (h *AIHandler) TeachingMethods(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req teachingMethodRequest
	if !bindJSON(c, &req) {
		return
	}

	text, err := h.ai.TeachingMethods(c.Request.Context(), req.Topic, req.Grade)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"suggestions": text})
}

// FollowUp godoc
// @Summary      Suggest counseling follow-up steps
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Counseling notes"
// @Success      200 {object} map[string]string
// @Router       /ai/follow-up [post]
func (h *AIHandler) FollowUp(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req followUpRequest
	if !bindJSON(c, &req) {
		return
	}

	text, err := h.ai.FollowUp(c.Request.Context(), req.Type, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"suggestion": text})
}
