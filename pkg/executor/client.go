// Package executor provides the HTTP client for the execution service,
// which hosts sandboxed workspaces where agent-written code runs.
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Request timeouts are fixed by the workspace protocol. Workspace creation
// includes a git clone, so it gets the long budget. RunCode adds a grace
// period on top of the sandbox-side timeout so the service can report the
// timeout itself instead of the client racing it.
const (
	connectTimeout = 10 * time.Second
	requestTimeout = 120 * time.Second
	deleteTimeout  = 30 * time.Second
	runCodeGrace   = 30 * time.Second
)

// Error represents a failed call to the execution service. StatusCode is
// zero when the request never completed (connection refused, timeout).
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("execution service %s failed: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("execution service %s failed: %s", e.Op, e.Message)
}

// Client provides HTTP access to the execution service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the execution service at baseURL.
func NewClient(baseURL string) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Per-operation deadlines come from request contexts, not a
		// client-wide timeout.
		httpClient: &http.Client{Transport: transport},
	}
}

type createRequest struct {
	WorkspaceRef string `json:"workspace_ref"`
	RepoURL      string `json:"repo_url"`
	GitRef       string `json:"git_ref"`
}

type snapshotRequest struct {
	WorkspaceRef string `json:"workspace_ref"`
}

// SnapshotInfo describes a stored workspace snapshot.
type SnapshotInfo struct {
	WorkspaceRef string `json:"workspace_ref"`
	SnapshotKey  string `json:"snapshot_key"`
	SizeBytes    int64  `json:"size_bytes"`
}

type restoreRequest struct {
	WorkspaceRef string `json:"workspace_ref"`
	SnapshotKey  string `json:"snapshot_key"`
}

type runCodeRequest struct {
	Code         string `json:"code"`
	WorkspaceRef string `json:"workspace_ref"`
	TimeoutSec   int    `json:"timeout_sec"`
}

// CreateWorkspace clones repoURL at gitRef into a fresh sandbox registered
// under workspaceRef.
func (c *Client) CreateWorkspace(ctx context.Context, workspaceRef, repoURL, gitRef string) error {
	return c.post(ctx, "create", "/workspace/create", requestTimeout, createRequest{
		WorkspaceRef: workspaceRef,
		RepoURL:      repoURL,
		GitRef:       gitRef,
	}, nil)
}

// Snapshot captures the current workspace state and returns its key.
func (c *Client) Snapshot(ctx context.Context, workspaceRef string) (*SnapshotInfo, error) {
	var info SnapshotInfo
	err := c.post(ctx, "snapshot", "/workspace/snapshot", requestTimeout, snapshotRequest{
		WorkspaceRef: workspaceRef,
	}, &info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Restore resets the workspace to a previously captured snapshot.
func (c *Client) Restore(ctx context.Context, workspaceRef, snapshotKey string) error {
	return c.post(ctx, "restore", "/workspace/restore", requestTimeout, restoreRequest{
		WorkspaceRef: workspaceRef,
		SnapshotKey:  snapshotKey,
	}, nil)
}

// RunCode executes a code block inside the workspace sandbox. The sandbox
// enforces timeoutSec; the HTTP deadline is timeoutSec plus a grace period.
func (c *Client) RunCode(ctx context.Context, workspaceRef, code string, timeoutSec int) (*ExecutionResult, error) {
	timeout := time.Duration(timeoutSec)*time.Second + runCodeGrace
	var result ExecutionResult
	err := c.post(ctx, "run_code", "/workspace/run_code", timeout, runCodeRequest{
		Code:         code,
		WorkspaceRef: workspaceRef,
		TimeoutSec:   timeoutSec,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteWorkspace discards the sandbox and its snapshots. Idempotent on the
// service side.
func (c *Client) DeleteWorkspace(ctx context.Context, workspaceRef string) error {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/workspace/"+workspaceRef, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: "delete", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError("delete", resp)
	}
	return nil
}

func (c *Client) post(ctx context.Context, op, path string, timeout time.Duration, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(op, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", op, err)
		}
	}
	return nil
}

func newStatusError(op string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &Error{
		Op:         op,
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
