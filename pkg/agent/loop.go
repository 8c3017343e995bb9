// Package agent runs the multi-turn conversation that lets each pipeline
// role act on its workspace. The model proposes Python code blocks which the
// sandbox executes; the resulting observation is fed back on the next turn
// until the model emits a <result> payload or runs out of turns.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/pkg/agent/prompt"
	"github.com/codepilot-ai/codepilot/pkg/executor"
	"github.com/codepilot-ai/codepilot/pkg/llm"
	"github.com/codepilot-ai/codepilot/pkg/models"
	"github.com/codepilot-ai/codepilot/pkg/services"
)

const (
	// maxTurns bounds one step's conversation with the model.
	maxTurns = 20

	// heartbeatEvery is how many turns pass between liveness writes.
	heartbeatEvery = 3

	// maxObservationChars caps a single observation. Large file reads on big
	// repositories can push the transcript past the model's context limit.
	maxObservationChars = 8000

	// codeTimeoutSec is the sandbox-side limit for one code action. Long
	// enough for a full Maven test run.
	codeTimeoutSec = 300

	// rateLimitBackoff is the pause before retrying a rate-limited call.
	rateLimitBackoff = 60 * time.Second
)

// nudge is sent when the model neither acted nor concluded.
const nudge = "Continue. Use a code block to take an action, or write <result>...</result> when you are done."

// Sandbox is the slice of the execution service the loop depends on:
// running code inside a workspace, plus snapshot handling around the
// implementation stage.
type Sandbox interface {
	RunCode(ctx context.Context, workspaceRef, code string, timeoutSec int) (*executor.ExecutionResult, error)
	Snapshot(ctx context.Context, workspaceRef string) (*executor.SnapshotInfo, error)
	Restore(ctx context.Context, workspaceRef, snapshotKey string) error
}

// Loop drives one claimed step's conversation with the LLM until the agent
// emits a result, permanently fails, or exhausts its turn budget.
type Loop struct {
	llm     llm.Client
	sandbox Sandbox
	jobs    *services.JobService
	prompts *prompt.Builder
	model   string
	backoff time.Duration
}

// NewLoop wires the agent loop. Panics on a nil collaborator or empty model
// (programming error in main).
func NewLoop(llmClient llm.Client, sandbox Sandbox, jobs *services.JobService, prompts *prompt.Builder, model string) *Loop {
	if llmClient == nil || sandbox == nil || jobs == nil || prompts == nil {
		panic("agent.NewLoop: collaborators must not be nil")
	}
	if model == "" {
		panic("agent.NewLoop: model must not be empty")
	}
	return &Loop{
		llm:     llmClient,
		sandbox: sandbox,
		jobs:    jobs,
		prompts: prompts,
		model:   model,
		backoff: rateLimitBackoff,
	}
}

// Run executes the full agent loop for one claimed step. It blocks until
// the step reaches a terminal write or an infrastructure error stops it.
//
// Agent-level failures (LLM errors, turn exhaustion) are recorded through
// the job service and return nil. Only errors the loop cannot record itself
// surface to the caller, which is expected to fail the step.
func (l *Loop) Run(ctx context.Context, st *ent.Step) error {
	log := slog.With(
		"job_id", st.JobID,
		"step_id", st.ID,
		"role", st.Role,
		"attempt", st.Attempt,
	)

	jb, err := l.jobs.GetJobByID(ctx, st.JobID)
	if err != nil {
		return fmt.Errorf("failed to load job for step %s: %w", st.ID, err)
	}

	// Outputs of all previously completed steps. Each agent sees the full
	// context of what came before it.
	prior, err := l.jobs.CompletedResults(ctx, jb.ID)
	if err != nil {
		return fmt.Errorf("failed to collect prior results: %w", err)
	}

	// The implementer mutates the workspace, so bracket it with snapshot
	// handling: restore the pre-implementation state on a retry, then
	// capture a fresh rollback point.
	if st.Role == step.RoleImplementer {
		l.snapshotBeforeImplementer(ctx, jb, log)
	}

	history := l.loadOrInitHistory(st, jb, prior, log)

	log.Info("Starting agent loop")

	for turn := 1; turn <= maxTurns; turn++ {
		log.Debug("Agent turn", "turn", turn, "max_turns", maxTurns)

		response, err := l.llm.Complete(ctx, l.model, l.prompts.SystemPrompt(st.Role), history)
		if err != nil {
			if errors.Is(err, llm.ErrRateLimited) {
				log.Warn("Rate limited by LLM API, backing off before retry",
					"turn", turn, "max_turns", maxTurns, "backoff", l.backoff)
				select {
				case <-time.After(l.backoff):
				case <-ctx.Done():
					return ctx.Err()
				}
				// A transient rate limit does not consume a turn.
				turn--
				continue
			}
			return l.jobs.FailStep(ctx, st.ID, "Claude API error: "+err.Error())
		}
		history = append(history, models.AssistantMessage(response))

		if result, ok := ExtractResult(response); ok {
			log.Info("Step completed", "turns", turn)
			return l.jobs.CompleteStep(ctx, st.ID, result)
		}

		var observation string
		if code, ok := ExtractCodeBlock(response); ok {
			observation = l.executeCode(ctx, jb.WorkspaceRef, code)
		} else {
			// The agent is reasoning without acting. Nudge it onward.
			observation = nudge
		}
		history = append(history, models.UserMessage("Observation:\n"+observation))

		// Persist the transcript so an interrupted step resumes here.
		l.persistHistory(ctx, st.ID, history, log)

		if turn%heartbeatEvery == 0 {
			if err := l.jobs.Heartbeat(ctx, st.ID); err != nil {
				return fmt.Errorf("failed to record heartbeat: %w", err)
			}
		}
	}

	return l.jobs.FailStep(ctx, st.ID,
		fmt.Sprintf("Max turns (%d) reached without producing a <result> tag.", maxTurns))
}

// executeCode runs one code action in the workspace sandbox and renders the
// observation the model reads on its next turn. Transport failures become
// observations too, so the agent can react instead of the step dying.
func (l *Loop) executeCode(ctx context.Context, workspaceRef, code string) string {
	result, err := l.sandbox.RunCode(ctx, workspaceRef, code, codeTimeoutSec)
	if err != nil {
		return "error_type: EXECUTOR_UNREACHABLE\nstderr: " + err.Error()
	}
	observation := result.Observation()
	if len(observation) > maxObservationChars {
		observation = observation[:maxObservationChars] + fmt.Sprintf(
			"\n[... output truncated at %d chars to stay within context limits ...]", maxObservationChars)
	}
	return observation
}

// snapshotBeforeImplementer restores the pre-implementation snapshot when
// one exists (retry or a later repair iteration), then captures a fresh one
// and records its key on the job. Failures here are not fatal: the worst
// outcome is an implementer starting from a partially modified tree.
func (l *Loop) snapshotBeforeImplementer(ctx context.Context, jb *ent.Job, log *slog.Logger) {
	if jb.SnapshotKey != nil {
		if err := l.sandbox.Restore(ctx, jb.WorkspaceRef, *jb.SnapshotKey); err != nil {
			log.Warn("Could not restore snapshot, starting from current workspace state",
				"snapshot_key", *jb.SnapshotKey, "error", err)
		} else {
			log.Info("Workspace restored to pre-implementation snapshot",
				"snapshot_key", *jb.SnapshotKey)
		}
	}

	info, err := l.sandbox.Snapshot(ctx, jb.WorkspaceRef)
	if err != nil {
		log.Warn("Could not snapshot workspace, rollback unavailable", "error", err)
		return
	}
	if err := l.jobs.SaveSnapshotKey(ctx, jb.ID, info.SnapshotKey); err != nil {
		log.Warn("Could not save snapshot key", "snapshot_key", info.SnapshotKey, "error", err)
		return
	}
	log.Info("Workspace snapshot taken before implementation", "snapshot_key", info.SnapshotKey)
}
