package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/pkg/models"
)

// submitJobHandler handles POST /jobs. Always returns 201 when the job row
// was created, even if the workspace clone failed and the job is already
// FAILED; the caller learns the outcome from the state field.
func (s *Server) submitJobHandler(c *gin.Context) {
	var req models.SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	// Callers may omit gitRef.
	if strings.TrimSpace(req.GitRef) == "" {
		req.GitRef = "main"
	}

	jb, err := s.jobs.Submit(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, jobResponseFrom(jb))
}

// getJobHandler handles GET /jobs/:id.
func (s *Server) getJobHandler(c *gin.Context) {
	jb, err := s.jobs.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobResponseFrom(jb))
}

// listStepsHandler handles GET /jobs/:id/steps. Steps come back in creation
// order so the list reads as a pipeline timeline.
func (s *Server) listStepsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("id")

	if _, err := s.jobs.GetJobByID(ctx, jobID); err != nil {
		respondServiceError(c, err)
		return
	}

	steps, err := s.jobs.GetSteps(ctx, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]*StepResponse, 0, len(steps))
	for _, st := range steps {
		out = append(out, stepResponseFrom(st))
	}
	c.JSON(http.StatusOK, out)
}

// getReportHandler handles GET /jobs/:id/report: the structured run summary
// produced by the finalizer agent.
//
// The finalizer writes a JSON summary into its step's result, and this
// endpoint surfaces it directly without needing a separate artifact store.
//
//	200 — finalizer result available, parsed and enriched with job metadata
//	202 — job still running, finalizer not yet complete
//	404 — job not found
func (s *Server) getReportHandler(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("id")

	jb, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	steps, err := s.jobs.GetSteps(ctx, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var finalizer *ent.Step
	for _, st := range steps {
		if st.Role == step.RoleFinalizer && st.State == step.StateDone && st.ResultJSON != nil {
			finalizer = st
			break
		}
	}

	if finalizer == nil {
		c.JSON(http.StatusAccepted, gin.H{
			"status":   "pending",
			"jobState": wireEnum(string(jb.State)),
		})
		return
	}

	var report map[string]any
	if err := json.Unmarshal([]byte(*finalizer.ResultJSON), &report); err != nil || report == nil {
		// Finalizer result is not a JSON object: return it as raw text.
		c.JSON(http.StatusOK, gin.H{
			"jobId":    jb.ID,
			"jobState": wireEnum(string(jb.State)),
			"report":   *finalizer.ResultJSON,
		})
		return
	}

	report["jobId"] = jb.ID
	report["jobState"] = wireEnum(string(jb.State))
	report["createdAt"] = jb.CreatedAt
	report["updatedAt"] = jb.UpdatedAt
	report["iterations"] = jb.IterationCount
	c.JSON(http.StatusOK, report)
}
