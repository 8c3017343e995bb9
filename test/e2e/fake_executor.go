package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/codepilot-ai/codepilot/pkg/executor"
)

// FakeExecutionService stands in for the execution service over real HTTP,
// so tests exercise the executor client end to end. Every workspace call is
// recorded for traffic assertions; snapshots get deterministic keys
// ("snap-1", "snap-2", ...) in creation order.
type FakeExecutionService struct {
	srv *httptest.Server

	mu          sync.Mutex
	snapshotSeq int
	creates     []CreateCall
	snapshots   []string
	restores    []RestoreCall
	runs        []RunCall
	deletes     []string
	runHandler  func(code string) executor.ExecutionResult
	runFailure  string
}

// CreateCall records one POST /workspace/create.
type CreateCall struct {
	WorkspaceRef string `json:"workspace_ref"`
	RepoURL      string `json:"repo_url"`
	GitRef       string `json:"git_ref"`
}

// RestoreCall records one POST /workspace/restore.
type RestoreCall struct {
	WorkspaceRef string `json:"workspace_ref"`
	SnapshotKey  string `json:"snapshot_key"`
}

// RunCall records one POST /workspace/run_code.
type RunCall struct {
	Code         string `json:"code"`
	WorkspaceRef string `json:"workspace_ref"`
	TimeoutSec   int    `json:"timeout_sec"`
}

// NewFakeExecutionService starts the fake on an ephemeral port. The server
// is shut down when the test ends.
func NewFakeExecutionService(t *testing.T) *FakeExecutionService {
	t.Helper()

	f := &FakeExecutionService{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /workspace/create", f.handleCreate)
	mux.HandleFunc("POST /workspace/snapshot", f.handleSnapshot)
	mux.HandleFunc("POST /workspace/restore", f.handleRestore)
	mux.HandleFunc("POST /workspace/run_code", f.handleRunCode)
	mux.HandleFunc("DELETE /workspace/{ref}", f.handleDelete)

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the fake's base URL for the executor client.
func (f *FakeExecutionService) URL() string {
	return f.srv.URL
}

// SetRunHandler scripts run_code results based on the submitted code.
func (f *FakeExecutionService) SetRunHandler(handler func(code string) executor.ExecutionResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runHandler = handler
}

// FailRuns makes every subsequent run_code call fail with HTTP 500.
func (f *FakeExecutionService) FailRuns(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runFailure = message
}

func (f *FakeExecutionService) handleCreate(w http.ResponseWriter, r *http.Request) {
	var call CreateCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.creates = append(f.creates, call)
	f.mu.Unlock()

	writeJSON(w, map[string]string{"status": "created"})
}

func (f *FakeExecutionService) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkspaceRef string `json:"workspace_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.snapshotSeq++
	key := fmt.Sprintf("snap-%d", f.snapshotSeq)
	f.snapshots = append(f.snapshots, req.WorkspaceRef)
	f.mu.Unlock()

	writeJSON(w, executor.SnapshotInfo{
		WorkspaceRef: req.WorkspaceRef,
		SnapshotKey:  key,
		SizeBytes:    4096,
	})
}

func (f *FakeExecutionService) handleRestore(w http.ResponseWriter, r *http.Request) {
	var call RestoreCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.restores = append(f.restores, call)
	f.mu.Unlock()

	writeJSON(w, map[string]string{"status": "restored"})
}

func (f *FakeExecutionService) handleRunCode(w http.ResponseWriter, r *http.Request) {
	var call RunCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.runs = append(f.runs, call)
	failure := f.runFailure
	handler := f.runHandler
	f.mu.Unlock()

	if failure != "" {
		http.Error(w, failure, http.StatusInternalServerError)
		return
	}

	result := executor.ExecutionResult{ExitCode: 0, Stdout: "ok", ElapsedSec: 0.1}
	if handler != nil {
		result = handler(call.Code)
	}
	writeJSON(w, result)
}

func (f *FakeExecutionService) handleDelete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.deletes = append(f.deletes, r.PathValue("ref"))
	f.mu.Unlock()

	writeJSON(w, map[string]string{"status": "deleted"})
}

// Creates returns all recorded workspace creations.
func (f *FakeExecutionService) Creates() []CreateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]CreateCall(nil), f.creates...)
}

// SnapshotCount returns how many snapshots were taken.
func (f *FakeExecutionService) SnapshotCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.snapshots)
}

// Restores returns all recorded snapshot restores.
func (f *FakeExecutionService) Restores() []RestoreCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RestoreCall(nil), f.restores...)
}

// Runs returns all recorded code executions.
func (f *FakeExecutionService) Runs() []RunCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RunCall(nil), f.runs...)
}

// Deletes returns the workspace refs of all recorded deletions.
func (f *FakeExecutionService) Deletes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletes...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
