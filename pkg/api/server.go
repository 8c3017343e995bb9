// Package api exposes the HTTP surface of the orchestrator: job submission,
// job/step polling, the finalizer report, and the health endpoint.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codepilot-ai/codepilot/pkg/database"
	"github.com/codepilot-ai/codepilot/pkg/queue"
	"github.com/codepilot-ai/codepilot/pkg/services"
)

// Server hosts the HTTP API.
type Server struct {
	db        *database.Client
	jobs      *services.JobService
	scheduler *queue.Scheduler

	httpSrv *http.Server
}

// NewServer creates the API server. The scheduler is optional; when nil the
// health endpoint simply omits scheduler stats.
func NewServer(db *database.Client, jobs *services.JobService, scheduler *queue.Scheduler) *Server {
	return &Server{
		db:        db,
		jobs:      jobs,
		scheduler: scheduler,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.healthHandler)

	jobs := router.Group("/jobs")
	{
		jobs.POST("", s.submitJobHandler)
		jobs.GET("/:id", s.getJobHandler)
		jobs.GET("/:id/steps", s.listStepsHandler)
		jobs.GET("/:id/report", s.getReportHandler)
	}

	return router
}

// Start runs the HTTP server on addr. Blocks until Shutdown or failure.
func (s *Server) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// StartWithListener serves on an already-bound listener. Tests use this to
// run on an ephemeral port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpSrv = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.Serve(ln)
}

// Shutdown stops the HTTP server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
