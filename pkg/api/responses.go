package api

import (
	"strings"
	"time"

	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/pkg/queue"
)

// JobResponse is returned by POST /jobs and GET /jobs/:id. Contains enough
// information for the caller to poll job progress.
type JobResponse struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	RepoURL   string    `json:"repoUrl"`
	GitRef    string    `json:"gitRef"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func jobResponseFrom(jb *ent.Job) *JobResponse {
	return &JobResponse{
		ID:        jb.ID,
		State:     wireEnum(string(jb.State)),
		RepoURL:   jb.RepoURL,
		GitRef:    jb.GitRef,
		CreatedAt: jb.CreatedAt,
		UpdatedAt: jb.UpdatedAt,
	}
}

// StepResponse is the read-only step view returned by GET /jobs/:id/steps.
//
// ResultJSON contains the agent's structured output (repo map JSON, repair
// plan JSON, test-pass/fail JSON) and is the primary artefact consumed by
// the benchmark evaluator.
type StepResponse struct {
	ID          string     `json:"id"`
	Role        string     `json:"role"`
	State       string     `json:"state"`
	Attempt     int        `json:"attempt"`
	WorkerID    *string    `json:"workerId"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt"`
	FinishedAt  *time.Time `json:"finishedAt"`
	HeartbeatAt *time.Time `json:"heartbeatAt"`
	ResultJSON  *string    `json:"resultJson"`
}

func stepResponseFrom(st *ent.Step) *StepResponse {
	return &StepResponse{
		ID:          st.ID,
		Role:        wireEnum(string(st.Role)),
		State:       wireEnum(string(st.State)),
		Attempt:     st.Attempt,
		WorkerID:    st.WorkerID,
		CreatedAt:   st.CreatedAt,
		StartedAt:   st.StartedAt,
		FinishedAt:  st.FinishedAt,
		HeartbeatAt: st.HeartbeatAt,
		ResultJSON:  st.ResultJSON,
	}
}

// wireEnum renders a stored enum value in its wire form. Enums persist as
// lowercase ("map_repo", "repo_mapper") and travel uppercase ("MAP_REPO",
// "REPO_MAPPER").
func wireEnum(v string) string {
	return strings.ToUpper(v)
}

// HealthCheck is one component's contribution to the health report.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Checks    map[string]HealthCheck `json:"checks"`
	Scheduler *queue.Health          `json:"scheduler,omitempty"`
}
