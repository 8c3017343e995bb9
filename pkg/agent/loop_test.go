package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/pkg/agent/prompt"
	"github.com/codepilot-ai/codepilot/pkg/executor"
	"github.com/codepilot-ai/codepilot/pkg/llm"
	"github.com/codepilot-ai/codepilot/pkg/models"
	"github.com/codepilot-ai/codepilot/pkg/services"
	"github.com/codepilot-ai/codepilot/pkg/skill"
	testdb "github.com/codepilot-ai/codepilot/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// llmTurn is one scripted LLM exchange.
type llmTurn struct {
	response string
	err      error
}

type llmCall struct {
	model    string
	system   string
	messages []models.Message
}

// scriptedLLM plays canned responses in order and records every call.
type scriptedLLM struct {
	mu     sync.Mutex
	script []llmTurn
	calls  []llmCall
}

func (s *scriptedLLM) Complete(_ context.Context, model, system string, messages []models.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, llmCall{
		model:    model,
		system:   system,
		messages: append([]models.Message(nil), messages...),
	})
	if len(s.script) == 0 {
		return "", fmt.Errorf("script exhausted after %d calls", len(s.calls))
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next.response, next.err
}

func (s *scriptedLLM) Close() error { return nil }

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *scriptedLLM) call(i int) llmCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[i]
}

// fakeSandbox stands in for the execution service.
type fakeSandbox struct {
	mu         sync.Mutex
	runs       []string
	runResult  *executor.ExecutionResult
	runErr     error
	snapCount  int
	snapErr    error
	restored   []string
	restoreErr error
}

func (f *fakeSandbox) RunCode(_ context.Context, _, code string, _ int) (*executor.ExecutionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, code)
	if f.runErr != nil {
		return nil, f.runErr
	}
	if f.runResult != nil {
		return f.runResult, nil
	}
	return &executor.ExecutionResult{ExitCode: 0, Stdout: "ok"}, nil
}

func (f *fakeSandbox) Snapshot(_ context.Context, _ string) (*executor.SnapshotInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.snapErr != nil {
		return nil, f.snapErr
	}
	f.snapCount++
	return &executor.SnapshotInfo{SnapshotKey: fmt.Sprintf("snap-%d", f.snapCount)}, nil
}

func (f *fakeSandbox) Restore(_ context.Context, _, snapshotKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.restoreErr != nil {
		return f.restoreErr
	}
	f.restored = append(f.restored, snapshotKey)
	return nil
}

type noopWorkspaces struct{}

func (noopWorkspaces) CreateWorkspace(context.Context, string, string, string) error { return nil }
func (noopWorkspaces) DeleteWorkspace(context.Context, string) error                 { return nil }

type loopFixture struct {
	client  *ent.Client
	jobs    *services.JobService
	llm     *scriptedLLM
	sandbox *fakeSandbox
	loop    *Loop
}

func newLoopFixture(t *testing.T) *loopFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})
	scripted := &scriptedLLM{}
	sandbox := &fakeSandbox{}
	registry := skill.NewRegistry(skill.Catalog()...)

	lp := NewLoop(scripted, sandbox, jobs, prompt.NewBuilder(registry.ToolDocumentation()), "claude-sonnet-4-6")
	lp.backoff = 5 * time.Millisecond

	return &loopFixture{
		client:  client.Client,
		jobs:    jobs,
		llm:     scripted,
		sandbox: sandbox,
		loop:    lp,
	}
}

func (f *loopFixture) submitJob(t *testing.T) *ent.Job {
	t.Helper()
	jb, err := f.jobs.Submit(context.Background(), models.SubmitJobRequest{
		RepoURL:         "https://github.com/acme/billing.git",
		GitRef:          "main",
		TaskDescription: strPtr("NPE in InvoiceService.total()"),
		FailingTest:     strPtr("InvoiceServiceTest#testTotal"),
	})
	require.NoError(t, err)
	return jb
}

func (f *loopFixture) claimStep(t *testing.T) *ent.Step {
	t.Helper()
	st, err := f.jobs.ClaimNextStep(context.Background(), "worker-test")
	require.NoError(t, err)
	return st
}

// advanceTo completes steps directly until one with the wanted role is claimed.
func (f *loopFixture) advanceTo(t *testing.T, role step.Role) *ent.Step {
	t.Helper()
	for {
		st := f.claimStep(t)
		if st.Role == role {
			return st
		}
		result := `{"ok": true}`
		if st.Role == step.RoleTester {
			result = `{"tests_passed": true}`
		}
		require.NoError(t, f.jobs.CompleteStep(context.Background(), st.ID, result))
	}
}

func (f *loopFixture) reloadStep(t *testing.T, id string) *ent.Step {
	t.Helper()
	st, err := f.client.Step.Get(context.Background(), id)
	require.NoError(t, err)
	return st
}

func strPtr(s string) *string { return &s }

func TestRun_CompletesOnResult(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)
	require.Equal(t, step.RoleRepoMapper, st.Role)

	f.llm.script = []llmTurn{{
		response: "Here is my summary.\n\n<result>{\"languages\": [\"java\"], \"entry_points\": [\"InvoiceService\"]}</result>",
	}}

	require.NoError(t, f.loop.Run(context.Background(), st))

	done := f.reloadStep(t, st.ID)
	assert.Equal(t, step.StateDone, done.State)
	require.NotNil(t, done.ResultJSON)
	assert.Contains(t, *done.ResultJSON, "entry_points")
	assert.NotNil(t, done.FinishedAt)

	// Job advanced to the planning stage.
	jb, err := f.jobs.GetJobByID(context.Background(), st.JobID)
	require.NoError(t, err)
	assert.Equal(t, job.StatePlan, jb.State)

	// The single call carried the role's system prompt and opening message.
	require.Equal(t, 1, f.llm.callCount())
	call := f.llm.call(0)
	assert.Equal(t, "claude-sonnet-4-6", call.model)
	assert.Contains(t, call.system, "You are the RepoMapper agent")
	require.Len(t, call.messages, 1)
	assert.Equal(t, models.RoleUser, call.messages[0].Role)
	assert.Contains(t, call.messages[0].Content, "You are starting your task as the REPO_MAPPER agent.")
	assert.Contains(t, call.messages[0].Content, "Bug description : NPE in InvoiceService.total()")
}

func TestRun_CodeActionProducesObservation(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	f.sandbox.runResult = &executor.ExecutionResult{ExitCode: 0, Stdout: "src\npom.xml\n"}
	f.llm.script = []llmTurn{
		{response: "Let me look around.\n```python\nprint(run_command([\"ls\"]))\n```"},
		{response: `<result>{"file_count": 2}</result>`},
	}

	require.NoError(t, f.loop.Run(context.Background(), st))

	require.Len(t, f.sandbox.runs, 1)
	assert.Equal(t, `print(run_command(["ls"]))`, f.sandbox.runs[0])

	// The second call sees the assistant turn plus the rendered observation.
	require.Equal(t, 2, f.llm.callCount())
	msgs := f.llm.call(1).messages
	require.Len(t, msgs, 3)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
	assert.Equal(t, models.RoleUser, msgs[2].Role)
	assert.Equal(t, "Observation:\nstdout:\nsrc\npom.xml\n\nexit_code: 0", msgs[2].Content)

	assert.Equal(t, step.StateDone, f.reloadStep(t, st.ID).State)
}

func TestRun_NudgesWhenModelOnlyReasons(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	f.llm.script = []llmTurn{
		{response: "I am thinking about the problem."},
		{response: `<result>{"ok": true}</result>`},
	}

	require.NoError(t, f.loop.Run(context.Background(), st))

	require.Equal(t, 2, f.llm.callCount())
	msgs := f.llm.call(1).messages
	last := msgs[len(msgs)-1]
	assert.Equal(t, models.RoleUser, last.Role)
	assert.Equal(t,
		"Observation:\nContinue. Use a code block to take an action, or write <result>...</result> when you are done.",
		last.Content)
	assert.Empty(t, f.sandbox.runs)
}

func TestRun_RateLimitDoesNotConsumeTurn(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	// One transient 429 followed by 20 act-only turns. If the rate limit
	// consumed a turn, the loop would stop after 19 of them.
	script := []llmTurn{{err: fmt.Errorf("anthropic: %w", llm.ErrRateLimited)}}
	for i := 0; i < maxTurns; i++ {
		script = append(script, llmTurn{response: "```python\nnoop()\n```"})
	}
	f.llm.script = script

	require.NoError(t, f.loop.Run(context.Background(), st))

	assert.Equal(t, maxTurns+1, f.llm.callCount())

	failed := f.reloadStep(t, st.ID)
	assert.Equal(t, step.StatePending, failed.State, "first failure schedules a retry")
	assert.Equal(t, 1, failed.Attempt)
}

func TestRun_CanceledDuringBackoff(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	f.loop.backoff = time.Hour
	f.llm.script = []llmTurn{{err: fmt.Errorf("anthropic: %w", llm.ErrRateLimited)}}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := f.loop.Run(ctx, st)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_APIErrorFailsStep(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	f.llm.script = []llmTurn{{err: fmt.Errorf("anthropic: server exploded")}}

	require.NoError(t, f.loop.Run(context.Background(), st))

	failed := f.reloadStep(t, st.ID)
	assert.Equal(t, step.StatePending, failed.State)
	assert.Equal(t, 1, failed.Attempt)
	assert.Nil(t, failed.WorkerID)
	assert.Equal(t, 1, f.llm.callCount())
}

func TestRun_MaxTurnsFailsStep(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	var script []llmTurn
	for i := 0; i < maxTurns; i++ {
		script = append(script, llmTurn{response: "Still thinking."})
	}
	f.llm.script = script

	require.NoError(t, f.loop.Run(context.Background(), st))

	assert.Equal(t, maxTurns, f.llm.callCount())
	failed := f.reloadStep(t, st.ID)
	assert.Equal(t, step.StatePending, failed.State)
	assert.Equal(t, 1, failed.Attempt)

	// The transcript was persisted turn by turn: the opening message plus
	// an assistant/observation pair per turn.
	require.NotNil(t, failed.ConversationHistory)
	var history []models.Message
	require.NoError(t, json.Unmarshal([]byte(*failed.ConversationHistory), &history))
	assert.Len(t, history, 1+2*maxTurns)
}

func TestRun_ResumesPersistedConversation(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	// First run: one code action, then the API dies. The step is retried
	// with its transcript intact.
	f.llm.script = []llmTurn{
		{response: "```python\nprint('probe')\n```"},
		{err: fmt.Errorf("anthropic: connection reset")},
	}
	require.NoError(t, f.loop.Run(context.Background(), st))

	retry := f.claimStep(t)
	assert.Equal(t, st.ID, retry.ID)
	assert.Equal(t, 1, retry.Attempt)

	f.llm.script = []llmTurn{{response: `<result>{"ok": true}</result>`}}
	require.NoError(t, f.loop.Run(context.Background(), retry))

	// The retry resumed mid-conversation instead of starting over.
	resumed := f.llm.call(2).messages
	require.Len(t, resumed, 3)
	assert.Contains(t, resumed[0].Content, "You are starting your task as the REPO_MAPPER agent.")
	assert.Equal(t, models.RoleAssistant, resumed[1].Role)
	assert.Contains(t, resumed[1].Content, "print('probe')")
	assert.Equal(t, models.RoleUser, resumed[2].Role)
	assert.Contains(t, resumed[2].Content, "Observation:")

	assert.Equal(t, step.StateDone, f.reloadStep(t, st.ID).State)
}

func TestRun_OversizedHistoryStartsFresh(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	giant, err := json.Marshal([]models.Message{models.UserMessage(strings.Repeat("x", 4*resumeTokenBudget))})
	require.NoError(t, err)
	require.NoError(t, f.jobs.SaveConversationHistory(context.Background(), st.ID, string(giant)))
	st = f.reloadStep(t, st.ID)

	f.llm.script = []llmTurn{{response: `<result>{"ok": true}</result>`}}
	require.NoError(t, f.loop.Run(context.Background(), st))

	msgs := f.llm.call(0).messages
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "You are starting your task")
	assert.NotContains(t, msgs[0].Content, "xxxxxxxx")
}

func TestRun_CorruptHistoryStartsFresh(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	require.NoError(t, f.jobs.SaveConversationHistory(context.Background(), st.ID, "{definitely not json"))
	st = f.reloadStep(t, st.ID)

	f.llm.script = []llmTurn{{response: `<result>{"ok": true}</result>`}}
	require.NoError(t, f.loop.Run(context.Background(), st))

	msgs := f.llm.call(0).messages
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "You are starting your task")
}

func TestRun_TruncatesOversizedObservation(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	f.sandbox.runResult = &executor.ExecutionResult{ExitCode: 0, Stdout: strings.Repeat("x", 20000)}
	f.llm.script = []llmTurn{
		{response: "```python\nprint(read_file('big.txt'))\n```"},
		{response: `<result>{"ok": true}</result>`},
	}

	require.NoError(t, f.loop.Run(context.Background(), st))

	msgs := f.llm.call(1).messages
	obs := msgs[len(msgs)-1].Content
	marker := "[... output truncated at 8000 chars to stay within context limits ...]"
	assert.True(t, strings.HasSuffix(obs, marker))
	assert.Len(t, obs, len("Observation:\n")+maxObservationChars+len("\n")+len(marker))
}

func TestRun_ExecutorErrorBecomesObservation(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)

	f.sandbox.runErr = &executor.Error{Op: "run_code", Message: "connection refused"}
	f.llm.script = []llmTurn{
		{response: "```python\nprint('hello')\n```"},
		{response: `<result>{"ok": true}</result>`},
	}

	require.NoError(t, f.loop.Run(context.Background(), st))

	msgs := f.llm.call(1).messages
	obs := msgs[len(msgs)-1].Content
	assert.True(t, strings.HasPrefix(obs, "Observation:\nerror_type: EXECUTOR_UNREACHABLE\nstderr: "))
	assert.Contains(t, obs, "connection refused")

	// The step keeps running; the agent decides how to react.
	assert.Equal(t, step.StateDone, f.reloadStep(t, st.ID).State)
}

func TestRun_HeartbeatsEveryThirdTurn(t *testing.T) {
	f := newLoopFixture(t)
	f.submitJob(t)
	st := f.claimStep(t)
	require.NotNil(t, st.HeartbeatAt)
	claimedAt := *st.HeartbeatAt

	time.Sleep(20 * time.Millisecond)

	f.llm.script = []llmTurn{
		{response: "Thinking."},
		{response: "Thinking more."},
		{response: "Still thinking."},
		{response: `<result>{"ok": true}</result>`},
	}
	require.NoError(t, f.loop.Run(context.Background(), st))

	done := f.reloadStep(t, st.ID)
	require.NotNil(t, done.HeartbeatAt)
	assert.True(t, done.HeartbeatAt.After(claimedAt), "heartbeat should be refreshed on turn 3")
}

func TestRun_ImplementerSnapshotLifecycle(t *testing.T) {
	t.Run("first run takes a snapshot and records the key", func(t *testing.T) {
		f := newLoopFixture(t)
		f.submitJob(t)
		st := f.advanceTo(t, step.RoleImplementer)

		f.llm.script = []llmTurn{{response: `<result>{"changes": []}</result>`}}
		require.NoError(t, f.loop.Run(context.Background(), st))

		assert.Empty(t, f.sandbox.restored)
		assert.Equal(t, 1, f.sandbox.snapCount)

		jb, err := f.jobs.GetJobByID(context.Background(), st.JobID)
		require.NoError(t, err)
		require.NotNil(t, jb.SnapshotKey)
		assert.Equal(t, "snap-1", *jb.SnapshotKey)

		// Earlier agents' outputs were rendered into the opening message.
		opening := f.llm.call(0).messages[0].Content
		assert.Contains(t, opening, "=== CONTEXT FROM PREVIOUS AGENTS ===")
		assert.Contains(t, opening, "[ REPO_MAPPER result ]")
		assert.Contains(t, opening, "[ PLANNER result ]")
	})

	t.Run("existing key is restored before a fresh snapshot", func(t *testing.T) {
		f := newLoopFixture(t)
		jb := f.submitJob(t)
		require.NoError(t, f.jobs.SaveSnapshotKey(context.Background(), jb.ID, "snap-old"))

		st := f.advanceTo(t, step.RoleImplementer)
		f.llm.script = []llmTurn{{response: `<result>{"changes": []}</result>`}}
		require.NoError(t, f.loop.Run(context.Background(), st))

		assert.Equal(t, []string{"snap-old"}, f.sandbox.restored)

		reloaded, err := f.jobs.GetJobByID(context.Background(), jb.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.SnapshotKey)
		assert.Equal(t, "snap-1", *reloaded.SnapshotKey)
	})

	t.Run("snapshot failure is not fatal", func(t *testing.T) {
		f := newLoopFixture(t)
		f.submitJob(t)
		st := f.advanceTo(t, step.RoleImplementer)

		f.sandbox.snapErr = fmt.Errorf("disk full")
		f.llm.script = []llmTurn{{response: `<result>{"changes": []}</result>`}}
		require.NoError(t, f.loop.Run(context.Background(), st))

		assert.Equal(t, step.StateDone, f.reloadStep(t, st.ID).State)
		jb, err := f.jobs.GetJobByID(context.Background(), st.JobID)
		require.NoError(t, err)
		assert.Nil(t, jb.SnapshotKey)
	})

	t.Run("other roles never touch snapshots", func(t *testing.T) {
		f := newLoopFixture(t)
		f.submitJob(t)
		st := f.claimStep(t)

		f.llm.script = []llmTurn{{response: `<result>{"ok": true}</result>`}}
		require.NoError(t, f.loop.Run(context.Background(), st))

		assert.Zero(t, f.sandbox.snapCount)
		assert.Empty(t, f.sandbox.restored)
	})
}

func TestNewLoop_Validation(t *testing.T) {
	prompts := prompt.NewBuilder("docs")

	assert.Panics(t, func() { NewLoop(nil, &fakeSandbox{}, &services.JobService{}, prompts, "m") })
	assert.Panics(t, func() { NewLoop(&scriptedLLM{}, &fakeSandbox{}, &services.JobService{}, prompts, "") })
}
