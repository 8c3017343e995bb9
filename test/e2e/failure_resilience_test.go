package e2e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/step"
)

// ────────────────────────────────────────────────────────────
// Failure resilience tests.
//
// A worker dying mid-step must not lose the conversation: the step goes
// back to pending with its transcript and the retry resumes exactly
// where the crash happened, on a workspace rolled back to the
// pre-implementation snapshot. Execution service outages surface as
// observations the agent can react to, not step failures.
// ────────────────────────────────────────────────────────────

func TestE2E_StepRetryResumesConversation(t *testing.T) {
	llm := NewScriptedLLMClient()

	llm.AddRouted("RepoMapper", LLMScriptEntry{
		Text: `<result>{"summary": "checkout service, rounding bug candidates in core"}</result>`,
	})
	llm.AddRouted("Planner", LLMScriptEntry{
		Text: `<result>{"plan": "Round the cart total with HALF_UP in Checkout.total"}</result>`,
	})
	// Implementer turn 1: apply the patch.
	llm.AddRouted("Implementer", LLMScriptEntry{
		Text: "Applying the plan.\n```python\napply_patch(\"core/src/main/java/Checkout.java\", PATCH)\nprint(\"applied\")\n```",
	})
	// Implementer turn 2: the LLM call dies, which fails the step and
	// requeues it with the transcript preserved.
	llm.AddRouted("Implementer", LLMScriptEntry{
		Err: errors.New("connection reset by peer"),
	})
	// Retry: the resumed conversation concludes on its first turn.
	llm.AddRouted("Implementer", LLMScriptEntry{
		Text: `<result>{"changes": "Checkout.total now rounds HALF_UP"}</result>`,
	})
	llm.AddRouted("Tester", LLMScriptEntry{
		Text: `<result>{"tests_passed": true}</result>`,
	})
	llm.AddRouted("Reviewer", LLMScriptEntry{
		Text: `<result>{"approved": true}</result>`,
	})
	llm.AddRouted("Finalizer", LLMScriptEntry{
		Text: `<result>{"summary": "Fixed cart rounding", "patch_applied": true}</result>`,
	})

	app := NewTestApp(t, WithLLMClient(llm))

	resp := app.SubmitJob(t, `{"repoUrl": "https://github.com/acme/checkout.git", "gitRef": "main"}`)
	jobID, _ := resp["id"].(string)
	require.NotEmpty(t, jobID)

	app.WaitForJobState(t, jobID, job.StateDone)

	// ═══════════════════════════════════════════════════════
	// The retry reused the step row and the saved transcript
	// ═══════════════════════════════════════════════════════

	steps := app.QuerySteps(t, jobID)
	require.Len(t, steps, 6, "retrying must not create a second implementer row")

	for _, st := range steps {
		if st.Role == step.RoleImplementer {
			assert.Equal(t, 1, st.Attempt, "one failed attempt before the successful run")
			assert.Equal(t, step.StateDone, st.State)
		} else {
			assert.Equal(t, 0, st.Attempt, "only the implementer step retried")
		}
	}

	implementerCalls := llm.CallsForRole("Implementer")
	require.Len(t, implementerCalls, 3)
	require.Len(t, implementerCalls[0].Messages, 1, "fresh conversation starts with the opening message")
	require.Len(t, implementerCalls[1].Messages, 3, "turn 2 carries the code action and its observation")
	assert.Equal(t, implementerCalls[1].Messages, implementerCalls[2].Messages,
		"the retry resumes the exact transcript the crashed worker saved")

	// ═══════════════════════════════════════════════════════
	// Workspace rolled back before the second attempt
	// ═══════════════════════════════════════════════════════

	assert.Equal(t, 2, app.Executor.SnapshotCount(), "each implementer start snapshots")
	restores := app.Executor.Restores()
	require.Len(t, restores, 1)
	assert.Equal(t, RestoreCall{WorkspaceRef: jobID, SnapshotKey: "snap-1"}, restores[0],
		"the retry restores the snapshot the first attempt captured")

	snapshotKey := app.Job(t, jobID).SnapshotKey
	require.NotNil(t, snapshotKey)
	assert.Equal(t, "snap-2", *snapshotKey)

	// 1 mapper + 1 planner + 3 implementer + 1 tester + 1 reviewer + 1 finalizer.
	assert.Equal(t, 8, llm.CallCount())
}

func TestE2E_ExecutorOutageBecomesObservation(t *testing.T) {
	llm := NewScriptedLLMClient()

	// RepoMapper turn 1: a code action that will hit the dead sandbox.
	llm.AddRouted("RepoMapper", LLMScriptEntry{
		Text: "```python\nprint(list_files(\".\"))\n```",
	})
	// RepoMapper turn 2: the agent concludes from memory anyway.
	llm.AddRouted("RepoMapper", LLMScriptEntry{
		Text: `<result>{"summary": "could not inspect workspace, assuming standard Maven layout"}</result>`,
	})
	llm.AddRouted("Planner", LLMScriptEntry{
		Text: `<result>{"plan": "Fix NPE in InvoiceFormatter"}</result>`,
	})
	llm.AddRouted("Implementer", LLMScriptEntry{
		Text: `<result>{"changes": "null guard in InvoiceFormatter.format"}</result>`,
	})
	llm.AddRouted("Tester", LLMScriptEntry{
		Text: `<result>{"tests_passed": true}</result>`,
	})
	llm.AddRouted("Reviewer", LLMScriptEntry{
		Text: `<result>{"approved": true}</result>`,
	})
	llm.AddRouted("Finalizer", LLMScriptEntry{
		Text: `<result>{"summary": "Fixed invoice NPE", "patch_applied": true}</result>`,
	})

	app := NewTestApp(t, WithLLMClient(llm))
	app.Executor.FailRuns("sandbox worker crashed")

	resp := app.SubmitJob(t, `{"repoUrl": "https://github.com/acme/invoicing.git", "gitRef": "main"}`)
	jobID, _ := resp["id"].(string)
	require.NotEmpty(t, jobID)

	// The outage reaches the agent as an observation; the pipeline still
	// completes.
	app.WaitForJobState(t, jobID, job.StateDone)

	mapperCalls := llm.CallsForRole("RepoMapper")
	require.Len(t, mapperCalls, 2)
	observation := mapperCalls[1].Messages[2].Content
	assert.Contains(t, observation, "EXECUTOR_UNREACHABLE")
	assert.Contains(t, observation, "HTTP 500")
	assert.Contains(t, observation, "sandbox worker crashed")

	for _, st := range app.QuerySteps(t, jobID) {
		assert.Equal(t, step.StateDone, st.State)
		assert.Equal(t, 0, st.Attempt, "an unreachable sandbox must not burn step attempts")
	}
}
