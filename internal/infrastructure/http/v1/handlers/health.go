package handlers

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"nextperm/internal/core/digits"
	"nextperm/internal/infrastructure/http/v1/dto"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	app     string
	version string
	ready   atomic.Bool
}

// NewHealthHandler creates a health handler that starts out ready.
func NewHealthHandler(app, version string) *HealthHandler {
	h := &HealthHandler{app: app, version: version}
	h.ready.Store(true)
	return h
}

// SetReady toggles the readiness probe, e.g. to drain traffic before shutdown.
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status: "error",
			Checks: map[string]string{"server": "shutting down"},
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Checks: map[string]string{"server": "accepting requests"},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InfoResponse{
		App:      h.app,
		Version:  h.version,
		MinInput: digits.MinInput,
		MaxInput: digits.MaxInput,
	})
}
