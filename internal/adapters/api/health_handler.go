package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the liveness body
type HealthResponse struct {
	Status string `json:"status"`
}

// health handles GET /health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// healthDetails handles GET /health/details requests. An unhealthy component
// turns the response into a 503; degraded ones keep it at 200.
func (s *HTTPServerAdapter) healthDetails(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	overall := "ok"
	statusCode := http.StatusOK
	for _, component := range components {
		switch component.Status {
		case "unhealthy":
			overall = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		case "degraded":
			if overall == "ok" {
				overall = "degraded"
			}
		}
	}

	c.JSON(statusCode, gin.H{
		"status":     overall,
		"components": components,
	})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")

	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
