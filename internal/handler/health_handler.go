package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/middleware"
)

type dbPinger interface {
	PingContext(ctx context.Context) error
}

type aiProbe interface {
	Enabled() bool
}

// HealthHandler exposes the liveness endpoints.
type HealthHandler struct {
	db dbPinger
	ai aiProbe
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db dbPinger, ai aiProbe) *HealthHandler {
	return &HealthHandler{db: db, ai: ai}
}

// Check godoc
// @Summary      Service health, with dependency status for authenticated callers
// @Tags         System
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "connected"
	status := "ok"
	if h.db == nil {
		dbStatus = "not configured"
		status = "degraded"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			dbStatus = "disconnected"
			status = "degraded"
		}
	}

	aiStatus := "disabled"
	if h.ai != nil && h.ai.Enabled() {
		aiStatus = "enabled"
	}

	payload := gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	// Dependency breakdown is for operators, not anonymous probes.
	if c.GetString(middleware.ContextUserID) != "" {
		payload["db"] = dbStatus
		payload["ai"] = aiStatus
	}
	c.JSON(http.StatusOK, payload)
}

// Ready godoc
// @Summary      Readiness probe, fails until the database answers
// @Tags         System
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Ping godoc
// @Summary      Minimal liveness probe
// @Tags         System
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/health [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
