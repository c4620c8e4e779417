package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor HealthReporter
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
