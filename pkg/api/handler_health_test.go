package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/pkg/config"
	"github.com/codepilot-ai/codepilot/pkg/queue"
	"github.com/codepilot-ai/codepilot/pkg/services"
	testdb "github.com/codepilot-ai/codepilot/test/database"
)

func TestHealth_ReportsDatabaseAndScheduler(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, okWorkspaces{})
	scheduler := queue.NewScheduler(jobs, nil, config.DefaultSchedulerConfig())
	srv := NewServer(client, jobs, scheduler)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got.Status)
	assert.NotEmpty(t, got.Version)
	assert.Equal(t, "healthy", got.Checks["database"].Status)
	require.NotNil(t, got.Scheduler)
	assert.Equal(t, config.DefaultSchedulerConfig().WorkerCount, got.Scheduler.WorkerSlots)
	assert.Zero(t, got.Scheduler.InFlight)
}

func TestHealth_OmitsSchedulerWhenAbsent(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, okWorkspaces{})
	srv := NewServer(client, jobs, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got.Status)
	assert.Nil(t, got.Scheduler)
}
