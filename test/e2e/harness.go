// Package e2e boots the whole orchestrator against a real PostgreSQL
// schema, a fake execution service, and a scripted LLM, then drives repair
// jobs through the public HTTP API.
package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/pkg/agent"
	"github.com/codepilot-ai/codepilot/pkg/agent/prompt"
	"github.com/codepilot-ai/codepilot/pkg/api"
	"github.com/codepilot-ai/codepilot/pkg/config"
	"github.com/codepilot-ai/codepilot/pkg/database"
	"github.com/codepilot-ai/codepilot/pkg/executor"
	"github.com/codepilot-ai/codepilot/pkg/queue"
	"github.com/codepilot-ai/codepilot/pkg/services"
	"github.com/codepilot-ai/codepilot/pkg/skill"
	testdb "github.com/codepilot-ai/codepilot/test/database"
)

// testModel is the model identifier the scripted LLM receives.
const testModel = "claude-sonnet-4-6"

// TestApp is a fully wired orchestrator instance for one test: database,
// fake execution service, scripted LLM, scheduler, and the HTTP API on an
// ephemeral port. Everything shuts down via t.Cleanup in reverse order.
type TestApp struct {
	DB        *database.Client
	Jobs      *services.JobService
	LLM       *ScriptedLLMClient
	Executor  *FakeExecutionService
	Scheduler *queue.Scheduler
	BaseURL   string

	httpClient *http.Client
}

type testAppConfig struct {
	llm         *ScriptedLLMClient
	workerCount int
}

// TestAppOption customizes the test app.
type TestAppOption func(*testAppConfig)

// WithLLMClient supplies the scripted LLM for the run.
func WithLLMClient(llm *ScriptedLLMClient) TestAppOption {
	return func(tc *testAppConfig) { tc.llm = llm }
}

// WithWorkerCount overrides the scheduler worker pool size (default 2).
func WithWorkerCount(n int) TestAppOption {
	return func(tc *testAppConfig) { tc.workerCount = n }
}

// NewTestApp boots the orchestrator. The scheduler ticks every 25ms so
// pipelines complete in test time.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tc := &testAppConfig{workerCount: 2}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.llm == nil {
		tc.llm = NewScriptedLLMClient()
	}

	// 1. Database with a fresh schema.
	db := testdb.NewTestClient(t)

	// 2. Fake execution service, reached through the real HTTP client.
	fake := NewFakeExecutionService(t)
	execClient := executor.NewClient(fake.URL())

	// 3. Job lifecycle service.
	jobs := services.NewJobService(db.Client, execClient)

	// 4. Agent loop wired to the scripted LLM.
	registry := skill.NewRegistry(skill.Catalog()...)
	prompts := prompt.NewBuilder(registry.ToolDocumentation())
	loop := agent.NewLoop(tc.llm, execClient, jobs, prompts, testModel)

	// 5. Scheduler with a fast tick.
	scheduler := queue.NewScheduler(jobs, loop, &config.SchedulerConfig{
		TickInterval:            25 * time.Millisecond,
		WorkerCount:             tc.workerCount,
		ReclaimInterval:         time.Second,
		StallThreshold:          5 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Second,
	})
	scheduler.Start(context.Background())
	t.Cleanup(scheduler.Stop)

	// 6. HTTP API on an ephemeral port.
	server := api.NewServer(db, jobs, scheduler)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "listen on ephemeral port")
	go func() { _ = server.StartWithListener(ln) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	return &TestApp{
		DB:         db,
		Jobs:       jobs,
		LLM:        tc.llm,
		Executor:   fake,
		Scheduler:  scheduler,
		BaseURL:    "http://" + ln.Addr().String(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SubmitJob posts a job submission and returns the decoded 201 response.
func (app *TestApp) SubmitJob(t *testing.T, body string) map[string]any {
	t.Helper()

	resp, err := app.httpClient.Post(app.BaseURL+"/jobs", "application/json", strings.NewReader(body))
	require.NoError(t, err, "POST /jobs")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "submit response: %s", raw)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

// GetJSON performs a GET and decodes the response object.
func (app *TestApp) GetJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	status, raw := app.get(t, path)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "decode %s: %s", path, raw)
	return status, decoded
}

// GetJSONList performs a GET and decodes the response array.
func (app *TestApp) GetJSONList(t *testing.T, path string) (int, []map[string]any) {
	t.Helper()

	status, raw := app.get(t, path)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "decode %s: %s", path, raw)
	return status, decoded
}

func (app *TestApp) get(t *testing.T, path string) (int, []byte) {
	t.Helper()

	resp, err := app.httpClient.Get(app.BaseURL + path)
	require.NoError(t, err, "GET %s", path)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// WaitForJobState polls until the job reaches the wanted state. Pipelines
// run on the scheduler tick, so completion is asynchronous to submission.
func (app *TestApp) WaitForJobState(t *testing.T, jobID string, want job.State) {
	t.Helper()

	require.Eventually(t, func() bool {
		jb, err := app.Jobs.GetJobByID(context.Background(), jobID)
		return err == nil && jb.State == want
	}, 30*time.Second, 50*time.Millisecond, "job %s never reached state %q", jobID, want)
}

// Job reads the job row directly from the database.
func (app *TestApp) Job(t *testing.T, jobID string) *ent.Job {
	t.Helper()

	jb, err := app.Jobs.GetJobByID(context.Background(), jobID)
	require.NoError(t, err)
	return jb
}

// QuerySteps reads the job's steps in creation order.
func (app *TestApp) QuerySteps(t *testing.T, jobID string) []*ent.Step {
	t.Helper()

	steps, err := app.Jobs.GetSteps(context.Background(), jobID)
	require.NoError(t, err)
	return steps
}
