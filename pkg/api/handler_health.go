package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codepilot-ai/codepilot/pkg/database"
	"github.com/codepilot-ai/codepilot/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the orchestrator's own components (database, scheduler) are checked.
// External dependencies (execution service, LLM service) are excluded to
// prevent a platform restart when someone else's service is unhealthy.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.db.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	resp := &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	}
	if s.scheduler != nil {
		h := s.scheduler.Health()
		resp.Scheduler = &h
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
}
