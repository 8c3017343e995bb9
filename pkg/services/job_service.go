package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/pkg/models"
	"github.com/google/uuid"
)

const (
	// maxAttempts bounds retries of a single step before the job fails.
	maxAttempts = 3

	// maxConsecutiveTestFailures bounds backtracking: a second tester
	// failure in a row exhausts the budget and fails the job.
	maxConsecutiveTestFailures = 2
)

// WorkspaceManager is the slice of the execution service API the job
// lifecycle needs: workspace creation at submit, deletion at terminal states.
type WorkspaceManager interface {
	CreateWorkspace(ctx context.Context, workspaceRef, repoURL, gitRef string) error
	DeleteWorkspace(ctx context.Context, workspaceRef string) error
}

// pipeline defines the agent execution order. Backtracking re-enters at
// the planner; everything else advances left to right.
var pipeline = []step.Role{
	step.RoleRepoMapper,
	step.RolePlanner,
	step.RoleImplementer,
	step.RoleTester,
	step.RoleReviewer,
	step.RoleFinalizer,
}

var stateForRole = map[step.Role]job.State{
	step.RoleRepoMapper:  job.StateMapRepo,
	step.RolePlanner:     job.StatePlan,
	step.RoleImplementer: job.StateImplement,
	step.RoleTester:      job.StateTest,
	step.RoleReviewer:    job.StateReview,
	step.RoleFinalizer:   job.StateFinalize,
}

// JobService manages job and step lifecycle
type JobService struct {
	client     *ent.Client
	workspaces WorkspaceManager
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client, workspaces WorkspaceManager) *JobService {
	return &JobService{client: client, workspaces: workspaces}
}

// Submit creates a new repair job, clones its workspace, and enqueues the
// first pipeline step. If the clone fails the job is returned in the failed
// state with no steps; submission itself still succeeds.
func (s *JobService) Submit(httpCtx context.Context, req models.SubmitJobRequest) (*ent.Job, error) {
	// Validate input
	if req.RepoURL == "" {
		return nil, NewValidationError("repo_url", "required")
	}
	if req.GitRef == "" {
		return nil, NewValidationError("git_ref", "required")
	}

	// The job id doubles as the workspace ref on the execution service.
	jobID := uuid.New().String()

	createCtx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.Job.Create().
		SetID(jobID).
		SetRepoURL(req.RepoURL).
		SetGitRef(req.GitRef).
		SetWorkspaceRef(jobID)
	if req.TaskDescription != nil {
		builder.SetTaskDescription(*req.TaskDescription)
	}
	if req.FailingTest != nil {
		builder.SetFailingTest(*req.FailingTest)
	}

	jb, err := builder.Save(createCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	// Clone the repository into the workspace. Large repos can take close
	// to a minute, so this runs on the incoming context rather than the
	// short write timeout; the executor client bounds the call itself.
	if err := s.workspaces.CreateWorkspace(httpCtx, jb.WorkspaceRef, req.RepoURL, req.GitRef); err != nil {
		slog.Error("Workspace creation failed", "job_id", jb.ID, "error", err)

		// Terminal write: must land even if the request context is gone.
		failCtx, cancelFail := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelFail()

		jb, err = s.client.Job.UpdateOneID(jb.ID).SetState(job.StateFailed).Save(failCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark job failed: %w", err)
		}
		return jb, nil
	}

	// Enqueue the repo mapper and hand the job to the scheduler.
	txCtx, cancelTx := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancelTx()

	tx, err := s.client.Tx(txCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Step.Create().
		SetID(uuid.New().String()).
		SetJobID(jb.ID).
		SetRole(step.RoleRepoMapper).
		Save(txCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue repo mapper step: %w", err)
	}

	jb, err = tx.Job.UpdateOneID(jb.ID).SetState(job.StateMapRepo).Save(txCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update job state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit job submission: %w", err)
	}

	slog.Info("Job submitted", "job_id", jb.ID, "repo_url", req.RepoURL, "git_ref", req.GitRef)
	return jb, nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID string) (*ent.Job, error) {
	jb, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return jb, nil
}

// GetSteps returns all steps for a job in creation order
func (s *JobService) GetSteps(ctx context.Context, jobID string) ([]*ent.Step, error) {
	steps, err := s.client.Step.Query().
		Where(step.JobIDEQ(jobID)).
		Order(ent.Asc(step.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	return steps, nil
}

// ClaimNextStep atomically claims the oldest pending step using
// FOR UPDATE SKIP LOCKED, so concurrent workers never claim the same step.
// Returns ErrNoPendingSteps when the queue is empty.
func (s *JobService) ClaimNextStep(ctx context.Context, workerID string) (*ent.Step, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing across all jobs
	st, err := tx.Step.Query().
		Where(step.StateEQ(step.StatePending)).
		Order(ent.Asc(step.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoPendingSteps
		}
		return nil, fmt.Errorf("failed to query pending steps: %w", err)
	}

	now := time.Now()
	st, err = st.Update().
		SetState(step.StateRunning).
		SetWorkerID(workerID).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim step: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	slog.Info("Worker claimed step", "worker_id", workerID, "step_id", st.ID, "job_id", st.JobID, "role", st.Role)
	return st, nil
}

// CompleteStep marks a step done and advances the pipeline.
//
// A tester step that reports failing tests does not advance: the first
// failure re-queues the planner with the failure visible in prior results,
// the second in a row exhausts the backtrack budget and fails the job.
// The streak resets whenever the tester passes.
func (s *JobService) CompleteStep(ctx context.Context, stepID, resultJSON string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	st, err := tx.Step.UpdateOneID(stepID).
		SetState(step.StateDone).
		SetFinishedAt(time.Now()).
		SetResultJSON(resultJSON).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark step done: %w", err)
	}

	jb, err := tx.Job.Get(writeCtx, st.JobID)
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}

	if st.Role == step.RoleTester && !testsPassed(resultJSON) {
		return s.backtrack(writeCtx, tx, jb)
	}

	next, ok := nextRole(st.Role)
	if !ok {
		// Last role finished, the job is complete.
		jb, err = jb.Update().SetState(job.StateDone).Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to finish job: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit job completion: %w", err)
		}
		slog.Info("Job done", "job_id", jb.ID)
		s.cleanupWorkspace(jb)
		return nil
	}

	_, err = tx.Step.Create().
		SetID(uuid.New().String()).
		SetJobID(jb.ID).
		SetRole(next).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s step: %w", next, err)
	}

	upd := jb.Update().SetState(stateForRole[next])
	if st.Role == step.RoleTester {
		// Tester passed, reset the failure streak.
		upd = upd.SetConsecutiveTestFailures(0)
	}
	jb, err = upd.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update job state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pipeline advance: %w", err)
	}

	slog.Info("Job advancing", "job_id", jb.ID, "state", jb.State)
	return nil
}

// backtrack handles a failing tester verdict inside the CompleteStep
// transaction: re-queue the planner, or give up once the budget is spent.
func (s *JobService) backtrack(ctx context.Context, tx *ent.Tx, jb *ent.Job) error {
	failures := jb.ConsecutiveTestFailures + 1

	if failures >= maxConsecutiveTestFailures {
		jb, err := jb.Update().
			SetConsecutiveTestFailures(failures).
			SetState(job.StateFailed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark job failed: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit backtrack: %w", err)
		}
		slog.Error("Backtrack budget exhausted, job failed",
			"job_id", jb.ID, "consecutive_test_failures", failures)
		s.cleanupWorkspace(jb)
		return nil
	}

	jb, err := jb.Update().
		SetConsecutiveTestFailures(failures).
		AddIterationCount(1).
		SetState(job.StatePlan).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update job for backtrack: %w", err)
	}

	_, err = tx.Step.Create().
		SetID(uuid.New().String()).
		SetJobID(jb.ID).
		SetRole(step.RolePlanner).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to enqueue planner step: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit backtrack: %w", err)
	}

	slog.Warn("Job backtracking to planning",
		"job_id", jb.ID, "iteration", jb.IterationCount, "consecutive_test_failures", failures)
	return nil
}

// FailStep records a step failure. Steps with attempts left go back to
// pending for the scheduler to re-claim; otherwise the step and its job
// fail permanently and the workspace is released.
func (s *JobService) FailStep(ctx context.Context, stepID, reason string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	st, err := tx.Step.Get(writeCtx, stepID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get step: %w", err)
	}

	attempt := st.Attempt + 1

	if attempt < maxAttempts {
		_, err = st.Update().
			SetState(step.StatePending).
			SetAttempt(attempt).
			ClearWorkerID().
			ClearStartedAt().
			ClearFinishedAt().
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to requeue step: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit step retry: %w", err)
		}
		slog.Warn("Step failed, will retry",
			"step_id", st.ID, "attempt", attempt, "max_attempts", maxAttempts, "reason", reason)
		return nil
	}

	_, err = st.Update().
		SetState(step.StateFailed).
		SetAttempt(attempt).
		SetFinishedAt(time.Now()).
		ClearWorkerID().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark step failed: %w", err)
	}

	jb, err := tx.Job.UpdateOneID(st.JobID).SetState(job.StateFailed).Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit step failure: %w", err)
	}

	slog.Error("Step permanently failed, job failed",
		"step_id", st.ID, "job_id", jb.ID, "attempts", attempt, "reason", reason)
	s.cleanupWorkspace(jb)
	return nil
}

// Heartbeat updates the liveness timestamp for a running step
func (s *JobService) Heartbeat(ctx context.Context, stepID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Step.UpdateOneID(stepID).SetHeartbeatAt(time.Now()).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	return nil
}

// ReclaimStalledSteps recovers steps whose worker stopped heartbeating,
// either from a crash or a network partition. Each stalled step goes
// through the normal failure path so retry accounting still applies.
func (s *JobService) ReclaimStalledSteps(ctx context.Context, stallTimeout time.Duration) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-stallTimeout)
	stalled, err := s.client.Step.Query().
		Where(
			step.StateEQ(step.StateRunning),
			step.HeartbeatAtLT(cutoff),
		).
		All(queryCtx)
	if err != nil {
		return fmt.Errorf("failed to query stalled steps: %w", err)
	}

	reason := fmt.Sprintf("Worker heartbeat timed out after %d minutes", int(stallTimeout.Minutes()))
	for _, st := range stalled {
		workerID := ""
		if st.WorkerID != nil {
			workerID = *st.WorkerID
		}
		slog.Warn("Recovering stalled step",
			"step_id", st.ID, "worker_id", workerID, "heartbeat_at", st.HeartbeatAt)
		if err := s.FailStep(ctx, st.ID, reason); err != nil {
			return fmt.Errorf("failed to recover step %s: %w", st.ID, err)
		}
	}
	return nil
}

// CompletedResults collects the result of every done step, keyed by role.
// After backtracking the same role can be done more than once; the newest
// result wins so later agents always see the current plan.
func (s *JobService) CompletedResults(ctx context.Context, jobID string) (map[step.Role]string, error) {
	steps, err := s.client.Step.Query().
		Where(
			step.JobIDEQ(jobID),
			step.StateEQ(step.StateDone),
			step.ResultJSONNotNil(),
		).
		Order(ent.Asc(step.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed steps: %w", err)
	}

	results := make(map[step.Role]string, len(steps))
	for _, st := range steps {
		results[st.Role] = *st.ResultJSON
	}
	return results, nil
}

// SaveConversationHistory persists the serialized agent transcript so a
// retried step can resume mid-conversation after a worker crash.
func (s *JobService) SaveConversationHistory(ctx context.Context, stepID, history string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Step.UpdateOneID(stepID).SetConversationHistory(history).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save conversation history: %w", err)
	}
	return nil
}

// SaveSnapshotKey records the latest pre-implementation workspace snapshot
func (s *JobService) SaveSnapshotKey(ctx context.Context, jobID, snapshotKey string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Job.UpdateOneID(jobID).SetSnapshotKey(snapshotKey).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save snapshot key: %w", err)
	}
	return nil
}

// cleanupWorkspace deletes the executor workspace of a job that reached a
// terminal state. Failures are swallowed: the state transition is already
// committed and a leftover workspace only costs disk until manual cleanup.
func (s *JobService) cleanupWorkspace(jb *ent.Job) {
	if err := s.workspaces.DeleteWorkspace(context.Background(), jb.WorkspaceRef); err != nil {
		slog.Warn("Could not delete workspace, manual cleanup may be needed",
			"workspace_ref", jb.WorkspaceRef, "job_id", jb.ID, "error", err)
		return
	}
	slog.Info("Workspace deleted", "workspace_ref", jb.WorkspaceRef, "job_id", jb.ID)
}

func nextRole(current step.Role) (step.Role, bool) {
	for i, r := range pipeline {
		if r == current && i < len(pipeline)-1 {
			return pipeline[i+1], true
		}
	}
	return "", false
}

// testsPassed reports whether a tester result claims success. A substring
// check keeps the service layer out of the business of parsing agent JSON;
// the tester prompt pins the exact field name.
func testsPassed(resultJSON string) bool {
	if strings.TrimSpace(resultJSON) == "" {
		return false
	}
	return strings.Contains(resultJSON, `"tests_passed":true`) ||
		strings.Contains(resultJSON, `"tests_passed": true`)
}
