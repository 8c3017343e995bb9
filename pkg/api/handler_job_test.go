package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/pkg/models"
	"github.com/codepilot-ai/codepilot/pkg/services"
	testdb "github.com/codepilot-ai/codepilot/test/database"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type okWorkspaces struct{}

func (okWorkspaces) CreateWorkspace(ctx context.Context, workspaceRef, repoURL, gitRef string) error {
	return nil
}

func (okWorkspaces) DeleteWorkspace(ctx context.Context, workspaceRef string) error { return nil }

type failingWorkspaces struct{}

func (failingWorkspaces) CreateWorkspace(ctx context.Context, workspaceRef, repoURL, gitRef string) error {
	return errors.New("clone failed: repository not found")
}

func (failingWorkspaces) DeleteWorkspace(ctx context.Context, workspaceRef string) error { return nil }

type apiFixture struct {
	jobs   *services.JobService
	router *gin.Engine
}

func newAPIFixture(t *testing.T, workspaces services.WorkspaceManager) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, workspaces)
	srv := NewServer(client, jobs, nil)
	return &apiFixture{jobs: jobs, router: srv.Router()}
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) submit(t *testing.T) *ent.Job {
	t.Helper()
	jb, err := f.jobs.Submit(context.Background(), models.SubmitJobRequest{
		RepoURL: "https://github.com/acme/billing.git",
		GitRef:  "main",
	})
	require.NoError(t, err)
	return jb
}

// driveToDone claims and completes pipeline steps until the queue drains,
// giving the finalizer the supplied result.
func (f *apiFixture) driveToDone(t *testing.T, finalizerResult string) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		st, err := f.jobs.ClaimNextStep(ctx, "worker-test")
		if errors.Is(err, services.ErrNoPendingSteps) {
			return
		}
		require.NoError(t, err)

		result := `{"ok": true}`
		switch st.Role {
		case step.RoleTester:
			result = `{"tests_passed": true}`
		case step.RoleFinalizer:
			result = finalizerResult
		}
		require.NoError(t, f.jobs.CompleteStep(ctx, st.ID, result))
	}
	t.Fatal("pipeline did not drain")
}

func TestSubmitJob_ValidRequest_Returns201(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})

	rec := f.do(http.MethodPost, "/jobs",
		`{"repoUrl": "https://github.com/org/repo.git", "gitRef": "main"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "MAP_REPO", got.State)
	assert.Equal(t, "https://github.com/org/repo.git", got.RepoURL)
	assert.Equal(t, "main", got.GitRef)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSubmitJob_BlankGitRefDefaultsToMain(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})

	for _, body := range []string{
		`{"repoUrl": "https://github.com/org/repo.git"}`,
		`{"repoUrl": "https://github.com/org/repo.git", "gitRef": "  "}`,
	} {
		rec := f.do(http.MethodPost, "/jobs", body)
		require.Equal(t, http.StatusCreated, rec.Code, body)

		var got JobResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "main", got.GitRef, body)
	}
}

func TestSubmitJob_WorkspaceFailure_Returns201WithFailedState(t *testing.T) {
	// The service handles the clone failure and returns a FAILED job; the
	// handler still returns 201 because the job row was created.
	f := newAPIFixture(t, failingWorkspaces{})

	rec := f.do(http.MethodPost, "/jobs",
		`{"repoUrl": "https://github.com/org/bad-repo.git", "gitRef": "main"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "FAILED", got.State)
}

func TestSubmitJob_MissingRepoURL_Returns400(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})

	rec := f.do(http.MethodPost, "/jobs", `{"gitRef": "main"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "repo_url")
}

func TestSubmitJob_MalformedBody_Returns400(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})

	rec := f.do(http.MethodPost, "/jobs", `{"repoUrl": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestGetJob_Existing_Returns200(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})
	jb := f.submit(t)

	rec := f.do(http.MethodGet, "/jobs/"+jb.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, jb.ID, got.ID)
	assert.Equal(t, "MAP_REPO", got.State)
}

func TestGetJob_Unknown_Returns404(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})

	rec := f.do(http.MethodGet, "/jobs/"+uuid.New().String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "job not found")
}

func TestListSteps_ReturnsPipelineTimeline(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})
	jb := f.submit(t)

	// Freshly submitted: one pending repo mapper step.
	rec := f.do(http.MethodGet, "/jobs/"+jb.ID+"/steps", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var steps []StepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &steps))
	require.Len(t, steps, 1)
	assert.Equal(t, "REPO_MAPPER", steps[0].Role)
	assert.Equal(t, "PENDING", steps[0].State)
	assert.Equal(t, 0, steps[0].Attempt)
	assert.Nil(t, steps[0].WorkerID)
	assert.Nil(t, steps[0].ResultJSON)

	// Complete the first stage and check the list grows in creation order.
	st, err := f.jobs.ClaimNextStep(context.Background(), "worker-test")
	require.NoError(t, err)
	require.NoError(t, f.jobs.CompleteStep(context.Background(), st.ID, `{"file_count": 42}`))

	rec = f.do(http.MethodGet, "/jobs/"+jb.ID+"/steps", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &steps))
	require.Len(t, steps, 2)
	assert.Equal(t, "REPO_MAPPER", steps[0].Role)
	assert.Equal(t, "DONE", steps[0].State)
	require.NotNil(t, steps[0].ResultJSON)
	assert.Equal(t, `{"file_count": 42}`, *steps[0].ResultJSON)
	require.NotNil(t, steps[0].WorkerID)
	assert.Equal(t, "worker-test", *steps[0].WorkerID)
	assert.Equal(t, "PLANNER", steps[1].Role)
	assert.Equal(t, "PENDING", steps[1].State)
}

func TestListSteps_UnknownJob_Returns404(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})

	rec := f.do(http.MethodGet, "/jobs/"+uuid.New().String()+"/steps", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetReport_PendingUntilFinalizerDone(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})
	jb := f.submit(t)

	rec := f.do(http.MethodGet, "/jobs/"+jb.ID+"/report", "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	var pending map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	assert.Equal(t, "pending", pending["status"])
	assert.Equal(t, "MAP_REPO", pending["jobState"])
}

func TestGetReport_EnrichedWhenDone(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})
	jb := f.submit(t)
	f.driveToDone(t, `{"summary": "fixed the bug", "patch_applied": true}`)

	rec := f.do(http.MethodGet, "/jobs/"+jb.ID+"/report", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "fixed the bug", report["summary"])
	assert.Equal(t, true, report["patch_applied"])
	assert.Equal(t, jb.ID, report["jobId"])
	assert.Equal(t, "DONE", report["jobState"])
	assert.Equal(t, float64(0), report["iterations"])
	assert.Contains(t, report, "createdAt")
	assert.Contains(t, report, "updatedAt")
}

func TestGetReport_NonJSONResultReturnedRaw(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})
	jb := f.submit(t)
	f.driveToDone(t, "All fixed. See the diff for details.")

	rec := f.do(http.MethodGet, "/jobs/"+jb.ID+"/report", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "All fixed. See the diff for details.", report["report"])
	assert.Equal(t, jb.ID, report["jobId"])
	assert.Equal(t, "DONE", report["jobState"])
}

func TestGetReport_UnknownJob_Returns404(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})

	rec := f.do(http.MethodGet, "/jobs/"+uuid.New().String()+"/report", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
