package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/ent/job"
)

// ────────────────────────────────────────────────────────────
// Pipeline test — one job through all six agents to DONE.
//
// The RepoMapper takes a single code action before concluding; every
// later agent answers with an immediate <result>. Verifies the public
// API surface (submit, job, steps, report), the step timeline, report
// enrichment, and the workspace lifecycle traffic on the execution
// service.
// ────────────────────────────────────────────────────────────

func TestE2E_Pipeline(t *testing.T) {
	llm := NewScriptedLLMClient()

	// RepoMapper turn 1: explore the workspace with a code action.
	llm.AddRouted("RepoMapper", LLMScriptEntry{
		Text: "Let me look at the repository layout.\n```python\nprint(list_files(\".\"))\n```",
	})
	// RepoMapper turn 2: conclude from the observation.
	llm.AddRouted("RepoMapper", LLMScriptEntry{
		Text: `<result>{"summary": "Maven project, date handling in core", "modules": ["core"]}</result>`,
	})
	llm.AddRouted("Planner", LLMScriptEntry{
		Text: `<result>{"plan": "Fix the off-by-one in DateRange.contains", "files": ["core/src/main/java/DateRange.java"]}</result>`,
	})
	llm.AddRouted("Implementer", LLMScriptEntry{
		Text: `<result>{"changes": "patched DateRange.contains boundary check"}</result>`,
	})
	llm.AddRouted("Tester", LLMScriptEntry{
		Text: `<result>{"tests_passed": true, "total": 214, "failed": 0}</result>`,
	})
	llm.AddRouted("Reviewer", LLMScriptEntry{
		Text: `<result>{"approved": true, "comments": "boundary fix is correct"}</result>`,
	})
	llm.AddRouted("Finalizer", LLMScriptEntry{
		Text: `<result>{"summary": "Fixed off-by-one in DateRange", "patch_applied": true}</result>`,
	})

	app := NewTestApp(t, WithLLMClient(llm))

	// ═══════════════════════════════════════════════════════
	// Submit and run to completion
	// ═══════════════════════════════════════════════════════

	resp := app.SubmitJob(t, `{
		"repoUrl": "https://github.com/acme/billing.git",
		"gitRef": "main",
		"taskDescription": "DateRange.contains excludes the end date",
		"failingTest": "DateRangeTest.includesEndDate"
	}`)
	jobID, _ := resp["id"].(string)
	require.NotEmpty(t, jobID)
	assert.Equal(t, "MAP_REPO", resp["state"], "submission returns the job already queued for mapping")

	app.WaitForJobState(t, jobID, job.StateDone)

	// ═══════════════════════════════════════════════════════
	// Job and step timeline over the API
	// ═══════════════════════════════════════════════════════

	status, jobBody := app.GetJSON(t, "/jobs/"+jobID)
	require.Equal(t, 200, status)
	assert.Equal(t, "DONE", jobBody["state"])
	assert.Equal(t, "https://github.com/acme/billing.git", jobBody["repoUrl"])
	assert.Equal(t, "main", jobBody["gitRef"])

	status, steps := app.GetJSONList(t, "/jobs/"+jobID+"/steps")
	require.Equal(t, 200, status)
	require.Len(t, steps, 6)

	wantRoles := []string{"REPO_MAPPER", "PLANNER", "IMPLEMENTER", "TESTER", "REVIEWER", "FINALIZER"}
	for i, st := range steps {
		assert.Equal(t, wantRoles[i], st["role"], "step %d role", i)
		assert.Equal(t, "DONE", st["state"], "step %d state", i)
		workerID, _ := st["workerId"].(string)
		assert.Contains(t, workerID, "worker-", "step %d worker id", i)
		assert.NotEmpty(t, st["resultJson"], "step %d result", i)
		assert.NotNil(t, st["startedAt"], "step %d started_at", i)
		assert.NotNil(t, st["finishedAt"], "step %d finished_at", i)
	}

	// ═══════════════════════════════════════════════════════
	// Report enrichment
	// ═══════════════════════════════════════════════════════

	status, report := app.GetJSON(t, "/jobs/"+jobID+"/report")
	require.Equal(t, 200, status)
	assert.Equal(t, "Fixed off-by-one in DateRange", report["summary"])
	assert.Equal(t, true, report["patch_applied"])
	assert.Equal(t, jobID, report["jobId"])
	assert.Equal(t, "DONE", report["jobState"])
	assert.Equal(t, float64(0), report["iterations"])
	assert.NotEmpty(t, report["createdAt"])
	assert.NotEmpty(t, report["updatedAt"])

	// ═══════════════════════════════════════════════════════
	// Agent context and LLM traffic
	// ═══════════════════════════════════════════════════════

	// 2 RepoMapper turns + 5 single-turn agents.
	assert.Equal(t, 7, llm.CallCount())

	// The RepoMapper's second turn sees the execution observation.
	mapperCalls := llm.CallsForRole("RepoMapper")
	require.Len(t, mapperCalls, 2)
	require.Len(t, mapperCalls[1].Messages, 3)
	assert.Contains(t, mapperCalls[1].Messages[2].Content, "Observation:")
	assert.Contains(t, mapperCalls[1].Messages[2].Content, "stdout:\nok")
	assert.Contains(t, mapperCalls[1].Messages[2].Content, "exit_code: 0")

	// Later agents receive the accumulated prior results.
	testerCalls := llm.CallsForRole("Tester")
	require.Len(t, testerCalls, 1)
	assert.Contains(t, testerCalls[0].Messages[0].Content, "[ IMPLEMENTER result ]")

	finalizerCalls := llm.CallsForRole("Finalizer")
	require.Len(t, finalizerCalls, 1)
	for _, prior := range []string{"REPO_MAPPER", "PLANNER", "IMPLEMENTER", "TESTER", "REVIEWER"} {
		assert.Contains(t, finalizerCalls[0].Messages[0].Content, "[ "+prior+" result ]")
	}

	// ═══════════════════════════════════════════════════════
	// Workspace lifecycle traffic
	// ═══════════════════════════════════════════════════════

	creates := app.Executor.Creates()
	require.Len(t, creates, 1)
	assert.Equal(t, CreateCall{
		WorkspaceRef: jobID,
		RepoURL:      "https://github.com/acme/billing.git",
		GitRef:       "main",
	}, creates[0])

	runs := app.Executor.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, `print(list_files("."))`, runs[0].Code)
	assert.Equal(t, jobID, runs[0].WorkspaceRef)
	assert.Equal(t, 300, runs[0].TimeoutSec)

	// One pre-implementation snapshot, never restored on the happy path.
	assert.Equal(t, 1, app.Executor.SnapshotCount())
	assert.Empty(t, app.Executor.Restores())
	snapshotKey := app.Job(t, jobID).SnapshotKey
	require.NotNil(t, snapshotKey)
	assert.Equal(t, "snap-1", *snapshotKey)

	// Workspace deletion follows the job completion commit.
	require.Eventually(t, func() bool {
		return len(app.Executor.Deletes()) == 1
	}, 5*time.Second, 25*time.Millisecond, "workspace should be deleted after completion")
	assert.Equal(t, []string{jobID}, app.Executor.Deletes())
}
