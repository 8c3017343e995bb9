package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes codepilot.yaml into a temp dir and returns the dir.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codepilot.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize(t *testing.T) {
	t.Run("full configuration", func(t *testing.T) {
		dir := writeConfigFile(t, `
executor:
  base_url: http://executor:8090
llm:
  transport: grpc
  model: claude-sonnet-4-6
  grpc_addr: llm-gateway:50051
  max_tokens: 2048
scheduler:
  tick_interval: 500ms
  worker_count: 8
  reclaim_interval: 30s
  stall_threshold: 2m
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ConfigDir())
		assert.Equal(t, "http://executor:8090", cfg.Executor.BaseURL)
		assert.Equal(t, LLMTransportGRPC, cfg.LLM.Transport)
		assert.Equal(t, "claude-sonnet-4-6", cfg.LLM.Model)
		assert.Equal(t, "llm-gateway:50051", cfg.LLM.GRPCAddr)
		assert.Equal(t, 2048, cfg.LLM.MaxTokens)
		assert.Equal(t, 500*time.Millisecond, cfg.Scheduler.TickInterval)
		assert.Equal(t, 8, cfg.Scheduler.WorkerCount)
		assert.Equal(t, 30*time.Second, cfg.Scheduler.ReclaimInterval)
		assert.Equal(t, 2*time.Minute, cfg.Scheduler.StallThreshold)
	})

	t.Run("defaults applied when sections omitted", func(t *testing.T) {
		dir := writeConfigFile(t, `
executor:
  base_url: http://localhost:8090
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, LLMTransportHTTP, cfg.LLM.Transport)
		assert.Equal(t, "claude-sonnet-4-6", cfg.LLM.Model)
		assert.Equal(t, "ANTHROPIC_API_KEY", cfg.LLM.APIKeyEnv)
		assert.Equal(t, 4096, cfg.LLM.MaxTokens)
		assert.Equal(t, 2*time.Second, cfg.Scheduler.TickInterval)
		assert.Equal(t, 4, cfg.Scheduler.WorkerCount)
		assert.Equal(t, 60*time.Second, cfg.Scheduler.ReclaimInterval)
		assert.Equal(t, 5*time.Minute, cfg.Scheduler.StallThreshold)
	})

	t.Run("partial llm section keeps remaining defaults", func(t *testing.T) {
		dir := writeConfigFile(t, `
executor:
  base_url: http://localhost:8090
llm:
  model: claude-opus-4
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, "claude-opus-4", cfg.LLM.Model)
		assert.Equal(t, LLMTransportHTTP, cfg.LLM.Transport)
		assert.Equal(t, 4096, cfg.LLM.MaxTokens)
	})

	t.Run("environment variables expanded", func(t *testing.T) {
		t.Setenv("EXECUTOR_HOST", "executor.svc.cluster.local")
		dir := writeConfigFile(t, `
executor:
  base_url: "http://{{.EXECUTOR_HOST}}:8090"
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "http://executor.svc.cluster.local:8090", cfg.Executor.BaseURL)
	})

	t.Run("missing config file", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, "codepilot.yaml", loadErr.File)
	})

	t.Run("invalid YAML syntax", func(t *testing.T) {
		dir := writeConfigFile(t, "executor:\n  base_url: [unclosed")

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("invalid duration falls back to default", func(t *testing.T) {
		dir := writeConfigFile(t, `
executor:
  base_url: http://localhost:8090
scheduler:
  tick_interval: not-a-duration
  worker_count: 2
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, cfg.Scheduler.TickInterval)
		assert.Equal(t, 2, cfg.Scheduler.WorkerCount)
	})
}

func TestInitializeValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		section string
		field   string
	}{
		{
			name:    "missing executor base_url",
			yaml:    "llm:\n  model: claude-sonnet-4-6\n",
			section: "executor",
			field:   "base_url",
		},
		{
			name: "unknown llm transport",
			yaml: `
executor:
  base_url: http://localhost:8090
llm:
  transport: carrier-pigeon
`,
			section: "llm",
			field:   "transport",
		},
		{
			name: "negative max_tokens",
			yaml: `
executor:
  base_url: http://localhost:8090
llm:
  max_tokens: -1
`,
			section: "llm",
			field:   "max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfigFile(t, tt.yaml)

			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.section, valErr.Section)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}
