package skill

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRegistry_RegistersCatalog(t *testing.T) {
	registry := NewRegistry(Catalog()...)

	assert.ElementsMatch(t, []string{
		"read_file", "write_file", "list_files", "search_code",
		"apply_patch", "git_diff", "run_command", "check_policy",
	}, registry.Names())
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry(Catalog()...)

	t.Run("known skill", func(t *testing.T) {
		s, err := registry.Get("read_file")
		require.NoError(t, err)
		assert.Equal(t, "read_file(path: str) -> str", s.Signature)
		assert.Equal(t, TargetExecutor, s.Target)
		assert.False(t, s.Policy.FilesystemWrite)
		assert.Equal(t, 10, s.Policy.TimeoutSec)
	})

	t.Run("unknown skill", func(t *testing.T) {
		_, err := registry.Get("no_such_skill")
		require.Error(t, err)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "no_such_skill", notFound.Name)
		assert.Equal(t, "No skill registered with name: 'no_such_skill'", err.Error())
	})
}

func TestRegistry_DuplicateNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(
			&Skill{Name: "read_file", Target: TargetExecutor},
			&Skill{Name: "read_file", Target: TargetExecutor},
		)
	})
}

func TestToolDocumentation(t *testing.T) {
	registry := NewRegistry(Catalog()...)
	docs := registry.ToolDocumentation()

	t.Run("preamble and rules", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(docs, "You have access to the following tool functions."))
		assert.Contains(t, docs, "AVAILABLE TOOLS:\n")
		assert.Contains(t, docs, "RULES:\n")
		assert.Contains(t, docs, "<result>...</result>")
		assert.True(t, strings.HasSuffix(docs, "This ends your turn.\n"))
	})

	t.Run("entry formatting", func(t *testing.T) {
		assert.Contains(t, docs, "  read_file(path: str) -> str\n      Read a file relative to the workspace root.\n\n")
		assert.Contains(t, docs, "  run_command(cmd: list[str], timeout: int = 300) -> dict\n")
		assert.Contains(t, docs, "  apply_patch(diff: str) -> dict\n")
		assert.Contains(t, docs, `  git_diff(base: str = "HEAD") -> str`+"\n")
		assert.Contains(t, docs, `  search_code(pattern: str, path: str = ".") -> list[dict]`+"\n")
	})

	t.Run("sandbox skills alphabetical, in-process last", func(t *testing.T) {
		order := []string{
			"apply_patch(", "git_diff(", "list_files(", "read_file(",
			"run_command(", "search_code(", "write_file(", "check_policy(",
		}
		prev := -1
		for _, sig := range order {
			idx := strings.Index(docs, "  "+sig)
			require.GreaterOrEqual(t, idx, 0, "missing entry %s", sig)
			assert.Greater(t, idx, prev, "entry %s out of order", sig)
			prev = idx
		}
	})
}

func TestRegistry_Execute(t *testing.T) {
	t.Run("in-process skill records metrics", func(t *testing.T) {
		reader := sdkmetric.NewManualReader()
		prev := otel.GetMeterProvider()
		otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
		t.Cleanup(func() { otel.SetMeterProvider(prev) })

		registry := NewRegistry(Catalog()...)

		result, err := registry.Execute(context.Background(), "check_policy", "+return 42;\n")
		require.NoError(t, err)

		report, ok := result.(*PolicyReport)
		require.True(t, ok)
		assert.True(t, report.Approved)

		var rm metricdata.ResourceMetrics
		require.NoError(t, reader.Collect(context.Background(), &rm))

		calls := findMetric(t, rm, "codepilot.skill.calls")
		sum, ok := calls.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		dp := sum.DataPoints[0]
		assert.Equal(t, int64(1), dp.Value)
		assertAttr(t, dp.Attributes, "skill", "check_policy")
		assertAttr(t, dp.Attributes, "status", StatusSuccess)

		duration := findMetric(t, rm, "codepilot.skill.duration")
		hist, ok := duration.Data.(metricdata.Histogram[float64])
		require.True(t, ok)
		require.Len(t, hist.DataPoints, 1)
		assertAttr(t, hist.DataPoints[0].Attributes, "target", string(TargetInProcess))
	})

	t.Run("sandbox skill cannot run in-process", func(t *testing.T) {
		registry := NewRegistry(Catalog()...)

		_, err := registry.Execute(context.Background(), "apply_patch", "diff")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "execution service")
	})

	t.Run("unknown skill", func(t *testing.T) {
		registry := NewRegistry(Catalog()...)

		_, err := registry.Execute(context.Background(), "no_such_skill", "")
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, StatusSuccess},
		{"deadline exceeded", context.DeadlineExceeded, StatusTimeout},
		{"wrapped deadline", fmt.Errorf("run: %w", context.DeadlineExceeded), StatusTimeout},
		{"policy violation", fmt.Errorf("%w: disabled test", ErrPolicyViolation), StatusPolicyViolation},
		{"parse error", fmt.Errorf("%w: bad json", ErrParse), StatusParseError},
		{"anything else", errors.New("boom"), StatusExecutorError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func findMetric(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Metrics {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}
	t.Fatalf("metric %s not found", name)
	return metricdata.Metrics{}
}

func assertAttr(t *testing.T, set attribute.Set, key, want string) {
	t.Helper()
	v, ok := set.Value(attribute.Key(key))
	require.True(t, ok, "attribute %s not present", key)
	assert.Equal(t, want, v.AsString())
}
