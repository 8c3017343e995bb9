package executor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateWorkspace(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		var gotPath string
		var gotBody createRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.CreateWorkspace(context.Background(), "job-1", "https://github.com/acme/billing.git", "main")
		require.NoError(t, err)

		assert.Equal(t, "/workspace/create", gotPath)
		assert.Equal(t, "job-1", gotBody.WorkspaceRef)
		assert.Equal(t, "https://github.com/acme/billing.git", gotBody.RepoURL)
		assert.Equal(t, "main", gotBody.GitRef)
	})

	t.Run("clone failure surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("git clone failed: repository not found"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.CreateWorkspace(context.Background(), "job-1", "https://github.com/acme/missing.git", "main")
		require.Error(t, err)

		var execErr *Error
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "create", execErr.Op)
		assert.Equal(t, http.StatusBadGateway, execErr.StatusCode)
		assert.Contains(t, execErr.Message, "repository not found")
	})
}

func TestClient_Snapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workspace/snapshot", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"workspace_ref":"job-1","snapshot_key":"snap-abc","size_bytes":52428800}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	info, err := client.Snapshot(context.Background(), "job-1")
	require.NoError(t, err)

	assert.Equal(t, "job-1", info.WorkspaceRef)
	assert.Equal(t, "snap-abc", info.SnapshotKey)
	assert.Equal(t, int64(52428800), info.SizeBytes)
}

func TestClient_Restore(t *testing.T) {
	var gotBody restoreRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workspace/restore", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Restore(context.Background(), "job-1", "snap-abc")
	require.NoError(t, err)

	assert.Equal(t, "job-1", gotBody.WorkspaceRef)
	assert.Equal(t, "snap-abc", gotBody.SnapshotKey)
}

func TestClient_RunCode(t *testing.T) {
	t.Run("successful run", func(t *testing.T) {
		var gotBody runCodeRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/workspace/run_code", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"exit_code":0,"stdout":"pom.xml\nsrc\n","stderr":"","elapsed_sec":0.4,"error_type":null}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		result, err := client.RunCode(context.Background(), "job-1", `print(list_files("."))`, 300)
		require.NoError(t, err)

		assert.Equal(t, `print(list_files("."))`, gotBody.Code)
		assert.Equal(t, "job-1", gotBody.WorkspaceRef)
		assert.Equal(t, 300, gotBody.TimeoutSec)

		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "pom.xml\nsrc\n", result.Stdout)
		assert.Nil(t, result.ErrorType)
	})

	t.Run("sandbox timeout is data, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"exit_code":-1,"stdout":"","stderr":"killed after 300s","elapsed_sec":300.0,"error_type":"TIMEOUT"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		result, err := client.RunCode(context.Background(), "job-1", "while True: pass", 300)
		require.NoError(t, err)

		require.NotNil(t, result.ErrorType)
		assert.Equal(t, ErrorTypeTimeout, *result.ErrorType)
		assert.Equal(t, -1, result.ExitCode)
	})
}

func TestClient_DeleteWorkspace(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.DeleteWorkspace(context.Background(), "job-1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/workspace/job-1", gotPath)
}

func TestClient_ServiceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close() // refuse all connections

	client := NewClient(server.URL)
	_, err := client.RunCode(context.Background(), "job-1", "print(1)", 10)
	require.Error(t, err)

	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "run_code", execErr.Op)
	assert.Zero(t, execErr.StatusCode)
	assert.NotEmpty(t, execErr.Message)
}

func TestClient_BaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")
	err := client.CreateWorkspace(context.Background(), "job-1", "https://github.com/acme/billing.git", "main")
	require.NoError(t, err)
	assert.Equal(t, "/workspace/create", gotPath)
}

func TestErrorFormatting(t *testing.T) {
	withStatus := &Error{Op: "snapshot", StatusCode: 500, Message: "disk full"}
	assert.Equal(t, "execution service snapshot failed: HTTP 500: disk full", withStatus.Error())

	noStatus := &Error{Op: "create", Message: "connection refused"}
	assert.Equal(t, "execution service create failed: connection refused", noStatus.Error())

	assert.True(t, errors.As(error(withStatus), new(*Error)))
}
