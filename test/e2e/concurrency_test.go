package e2e

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/step"
)

// ────────────────────────────────────────────────────────────
// Concurrency test — 4 jobs across a 4-worker pool.
//
// The scripted RepoMapper entries block until released, proving all
// four workers hold distinct claims at the same time. After release,
// every pipeline completes independently: 24 steps, each claimed and
// processed exactly once.
// ────────────────────────────────────────────────────────────

func TestE2E_Concurrency(t *testing.T) {
	llm := NewScriptedLLMClient()

	// releaseCh holds the four RepoMapper completions open; blockedCh
	// receives one signal per worker entering the blocked call.
	releaseCh := make(chan struct{})
	blockedCh := make(chan struct{}, 4)

	for i := 0; i < 4; i++ {
		llm.AddRouted("RepoMapper", LLMScriptEntry{
			Text:    `<result>{"summary": "standard Maven layout"}</result>`,
			WaitCh:  releaseCh,
			OnBlock: blockedCh,
		})
		llm.AddRouted("Planner", LLMScriptEntry{
			Text: `<result>{"plan": "apply the one-line fix"}</result>`,
		})
		llm.AddRouted("Implementer", LLMScriptEntry{
			Text: `<result>{"changes": "patched"}</result>`,
		})
		llm.AddRouted("Tester", LLMScriptEntry{
			Text: `<result>{"tests_passed": true}</result>`,
		})
		llm.AddRouted("Reviewer", LLMScriptEntry{
			Text: `<result>{"approved": true}</result>`,
		})
		llm.AddRouted("Finalizer", LLMScriptEntry{
			Text: `<result>{"summary": "repaired", "patch_applied": true}</result>`,
		})
	}

	app := NewTestApp(t, WithLLMClient(llm), WithWorkerCount(4))

	// ═══════════════════════════════════════════════════════
	// Submit 4 jobs
	// ═══════════════════════════════════════════════════════

	jobIDs := make([]string, 4)
	for i := range jobIDs {
		resp := app.SubmitJob(t, fmt.Sprintf(
			`{"repoUrl": "https://github.com/acme/service-%d.git", "gitRef": "main"}`, i+1))
		jobIDs[i], _ = resp["id"].(string)
		require.NotEmpty(t, jobIDs[i])
	}

	// ═══════════════════════════════════════════════════════
	// Phase 1: all four workers hold distinct claims
	// ═══════════════════════════════════════════════════════

	for i := 0; i < 4; i++ {
		select {
		case <-blockedCh:
		case <-time.After(15 * time.Second):
			t.Fatalf("only %d of 4 workers reached the blocked LLM call", i)
		}
	}

	status, health := app.GetJSON(t, "/health")
	require.Equal(t, 200, status)
	scheduler, ok := health["scheduler"].(map[string]any)
	require.True(t, ok, "health should embed scheduler stats: %v", health)
	assert.Equal(t, float64(4), scheduler["in_flight"])
	assert.Equal(t, float64(4), scheduler["worker_slots"])

	// Each job's repo mapper is running under its own worker.
	workerIDs := make(map[string]bool)
	for _, jobID := range jobIDs {
		steps := app.QuerySteps(t, jobID)
		require.Len(t, steps, 1)
		assert.Equal(t, step.StateRunning, steps[0].State)
		require.NotNil(t, steps[0].WorkerID)
		workerIDs[*steps[0].WorkerID] = true
	}
	assert.Len(t, workerIDs, 4, "four distinct workers hold the four claims")

	// ═══════════════════════════════════════════════════════
	// Phase 2: release and run all pipelines to completion
	// ═══════════════════════════════════════════════════════

	close(releaseCh)

	for _, jobID := range jobIDs {
		app.WaitForJobState(t, jobID, job.StateDone)
	}

	for i, jobID := range jobIDs {
		label := fmt.Sprintf("job %d (%s)", i+1, jobID[:8])

		steps := app.QuerySteps(t, jobID)
		require.Len(t, steps, 6, "%s: full pipeline", label)
		for _, st := range steps {
			assert.Equal(t, step.StateDone, st.State, "%s: step %s state", label, st.Role)
			assert.Equal(t, 0, st.Attempt, "%s: step %s processed exactly once", label, st.Role)
		}
	}

	// 4 jobs × 6 single-turn agents. Any double-claimed step would have
	// consumed extra entries and failed the count.
	assert.Equal(t, 24, llm.CallCount())

	assert.Len(t, app.Executor.Creates(), 4)
	assert.Equal(t, 4, app.Executor.SnapshotCount())
	assert.Empty(t, app.Executor.Restores())
	require.Eventually(t, func() bool {
		return len(app.Executor.Deletes()) == 4
	}, 5*time.Second, 25*time.Millisecond, "all four workspaces released")
}
