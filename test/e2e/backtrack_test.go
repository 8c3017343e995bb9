package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/ent/job"
)

// ────────────────────────────────────────────────────────────
// Backtrack tests — failing tester verdicts drive the repair loop.
//
// A first "tests_passed": false re-enters planning with the failure
// in context and rolls the workspace back to the pre-implementation
// snapshot. A second consecutive failure exhausts the backtrack
// budget and fails the job without reaching the reviewer.
// ────────────────────────────────────────────────────────────

func TestE2E_Backtrack(t *testing.T) {
	llm := NewScriptedLLMClient()

	llm.AddRouted("RepoMapper", LLMScriptEntry{
		Text: `<result>{"summary": "single-module Maven project", "modules": ["."]}</result>`,
	})
	// First plan misses the root cause; the revised one fixes it.
	llm.AddRouted("Planner", LLMScriptEntry{
		Text: `<result>{"plan": "Adjust the comparator in OrderBook.match"}</result>`,
	})
	llm.AddRouted("Planner", LLMScriptEntry{
		Text: `<result>{"plan": "Rebuild OrderBook.match around price-time priority"}</result>`,
	})
	llm.AddRouted("Implementer", LLMScriptEntry{
		Text: `<result>{"changes": "swapped comparator operands"}</result>`,
	})
	llm.AddRouted("Implementer", LLMScriptEntry{
		Text: `<result>{"changes": "reordered matching by price, then arrival"}</result>`,
	})
	// First test run fails, the rerun after replanning passes.
	llm.AddRouted("Tester", LLMScriptEntry{
		Text: `<result>{"tests_passed": false, "failed": 3, "failure_summary": "OrderBookTest price-time ordering"}</result>`,
	})
	llm.AddRouted("Tester", LLMScriptEntry{
		Text: `<result>{"tests_passed": true, "failed": 0}</result>`,
	})
	llm.AddRouted("Reviewer", LLMScriptEntry{
		Text: `<result>{"approved": true}</result>`,
	})
	llm.AddRouted("Finalizer", LLMScriptEntry{
		Text: `<result>{"summary": "Fixed order matching priority", "patch_applied": true}</result>`,
	})

	app := NewTestApp(t, WithLLMClient(llm))

	resp := app.SubmitJob(t, `{"repoUrl": "https://github.com/acme/exchange.git", "gitRef": "main"}`)
	jobID, _ := resp["id"].(string)
	require.NotEmpty(t, jobID)

	app.WaitForJobState(t, jobID, job.StateDone)

	// ═══════════════════════════════════════════════════════
	// One backtrack: planner and implementer ran twice
	// ═══════════════════════════════════════════════════════

	jb := app.Job(t, jobID)
	assert.Equal(t, 1, jb.IterationCount)
	assert.Equal(t, 0, jb.ConsecutiveTestFailures, "streak resets once the tester passes")

	steps := app.QuerySteps(t, jobID)
	var roles []string
	for _, st := range steps {
		roles = append(roles, string(st.Role))
		assert.Equal(t, "done", string(st.State), "step %s should be done", st.Role)
	}
	assert.Equal(t, []string{
		"repo_mapper", "planner", "implementer", "tester",
		"planner", "implementer", "tester", "reviewer", "finalizer",
	}, roles)

	// ═══════════════════════════════════════════════════════
	// Replanning context and workspace rollback
	// ═══════════════════════════════════════════════════════

	plannerCalls := llm.CallsForRole("Planner")
	require.Len(t, plannerCalls, 2)
	assert.NotContains(t, plannerCalls[0].Messages[0].Content, "REVISED")
	assert.Contains(t, plannerCalls[1].Messages[0].Content, "REVISED repair plan")
	assert.Contains(t, plannerCalls[1].Messages[0].Content, "OrderBookTest price-time ordering",
		"replanning planner sees the tester failure details")

	// The second implementer follows the revised plan.
	implementerCalls := llm.CallsForRole("Implementer")
	require.Len(t, implementerCalls, 2)
	assert.Contains(t, implementerCalls[1].Messages[0].Content, "price-time priority")

	// Snapshot before each implementation run; rollback to the first
	// snapshot before the second run.
	assert.Equal(t, 2, app.Executor.SnapshotCount())
	restores := app.Executor.Restores()
	require.Len(t, restores, 1)
	assert.Equal(t, RestoreCall{WorkspaceRef: jobID, SnapshotKey: "snap-1"}, restores[0])

	snapshotKey := jb.SnapshotKey
	require.NotNil(t, snapshotKey)
	assert.Equal(t, "snap-2", *snapshotKey)

	// ═══════════════════════════════════════════════════════
	// Report reflects the extra iteration
	// ═══════════════════════════════════════════════════════

	status, report := app.GetJSON(t, "/jobs/"+jobID+"/report")
	require.Equal(t, 200, status)
	assert.Equal(t, float64(1), report["iterations"])
	assert.Equal(t, "DONE", report["jobState"])

	assert.Equal(t, 9, llm.CallCount())
}

func TestE2E_BacktrackExhaustion(t *testing.T) {
	llm := NewScriptedLLMClient()

	llm.AddRouted("RepoMapper", LLMScriptEntry{
		Text: `<result>{"summary": "single-module Maven project"}</result>`,
	})
	llm.AddRouted("Planner", LLMScriptEntry{
		Text: `<result>{"plan": "Guard against null cart entries"}</result>`,
	})
	llm.AddRouted("Planner", LLMScriptEntry{
		Text: `<result>{"plan": "Initialize the cart eagerly instead"}</result>`,
	})
	llm.AddRouted("Implementer", LLMScriptEntry{
		Text: `<result>{"changes": "added null guard"}</result>`,
	})
	llm.AddRouted("Implementer", LLMScriptEntry{
		Text: `<result>{"changes": "eager cart initialization"}</result>`,
	})
	// The tests never pass; the second consecutive failure is terminal.
	llm.AddRouted("Tester", LLMScriptEntry{
		Text: `<result>{"tests_passed": false, "failed": 2}</result>`,
	})
	llm.AddRouted("Tester", LLMScriptEntry{
		Text: `<result>{"tests_passed": false, "failed": 2}</result>`,
	})

	app := NewTestApp(t, WithLLMClient(llm))

	resp := app.SubmitJob(t, `{"repoUrl": "https://github.com/acme/storefront.git", "gitRef": "main"}`)
	jobID, _ := resp["id"].(string)
	require.NotEmpty(t, jobID)

	app.WaitForJobState(t, jobID, job.StateFailed)

	// ═══════════════════════════════════════════════════════
	// Budget spent: no reviewer, job failed
	// ═══════════════════════════════════════════════════════

	jb := app.Job(t, jobID)
	assert.Equal(t, 2, jb.ConsecutiveTestFailures)
	assert.Equal(t, 1, jb.IterationCount, "the terminal failure does not start another iteration")

	steps := app.QuerySteps(t, jobID)
	var roles []string
	for _, st := range steps {
		roles = append(roles, string(st.Role))
	}
	assert.Equal(t, []string{
		"repo_mapper", "planner", "implementer", "tester",
		"planner", "implementer", "tester",
	}, roles)
	assert.NotContains(t, roles, "reviewer")

	// The tester step itself completed; the verdict is what failed the job.
	last := steps[len(steps)-1]
	assert.Equal(t, "done", string(last.State))

	// ═══════════════════════════════════════════════════════
	// No finalizer ran, so the report stays pending
	// ═══════════════════════════════════════════════════════

	status, report := app.GetJSON(t, "/jobs/"+jobID+"/report")
	assert.Equal(t, 202, status)
	assert.Equal(t, "pending", report["status"])
	assert.Equal(t, "FAILED", report["jobState"])

	// The workspace is released on the terminal transition.
	require.Eventually(t, func() bool {
		return len(app.Executor.Deletes()) == 1
	}, 5*time.Second, 25*time.Millisecond)

	assert.Equal(t, 7, llm.CallCount())
}
