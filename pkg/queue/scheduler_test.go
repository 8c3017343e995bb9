package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/pkg/config"
	"github.com/codepilot-ai/codepilot/pkg/models"
	"github.com/codepilot-ai/codepilot/pkg/services"
	testdb "github.com/codepilot-ai/codepilot/test/database"
)

type noopWorkspaces struct{}

func (noopWorkspaces) CreateWorkspace(ctx context.Context, workspaceRef, repoURL, gitRef string) error {
	return nil
}

func (noopWorkspaces) DeleteWorkspace(ctx context.Context, workspaceRef string) error {
	return nil
}

// fakeRunner stands in for the agent loop. With complete set it finishes
// each step successfully so the pipeline advances; with block set it holds
// every step open until the channel closes.
type fakeRunner struct {
	mu     sync.Mutex
	steps  []string
	active int
	peak   int

	block   chan struct{}
	started chan string
	runErr  error
	panics  bool

	complete *services.JobService
}

func (r *fakeRunner) Run(ctx context.Context, st *ent.Step) error {
	r.mu.Lock()
	r.steps = append(r.steps, st.ID)
	r.active++
	if r.active > r.peak {
		r.peak = r.active
	}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.active--
		r.mu.Unlock()
	}()

	if r.started != nil {
		r.started <- st.ID
	}

	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if r.panics {
		panic("agent loop exploded")
	}
	if r.runErr != nil {
		return r.runErr
	}

	if r.complete != nil {
		result := `{"ok": true}`
		if st.Role == step.RoleTester {
			result = `{"tests_passed": true}`
		}
		return r.complete.CompleteStep(ctx, st.ID, result)
	}
	return nil
}

func (r *fakeRunner) startedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.steps)
}

func (r *fakeRunner) activeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *fakeRunner) peakActive() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.peak
}

func testSchedulerConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		TickInterval:            10 * time.Millisecond,
		WorkerCount:             4,
		ReclaimInterval:         time.Hour,
		StallThreshold:          5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

func submitTestJob(t *testing.T, jobs *services.JobService) *ent.Job {
	t.Helper()
	jb, err := jobs.Submit(context.Background(), models.SubmitJobRequest{
		RepoURL: "https://github.com/acme/billing.git",
		GitRef:  "main",
	})
	require.NoError(t, err)
	return jb
}

func TestScheduler_DrivesJobToCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})
	runner := &fakeRunner{complete: jobs}

	s := NewScheduler(jobs, runner, testSchedulerConfig())
	s.Start(context.Background())
	defer s.Stop()

	jb := submitTestJob(t, jobs)

	require.Eventually(t, func() bool {
		got, err := jobs.GetJobByID(context.Background(), jb.ID)
		return err == nil && got.State == job.StateDone
	}, 10*time.Second, 20*time.Millisecond, "pipeline should reach DONE")

	steps, err := jobs.GetSteps(context.Background(), jb.ID)
	require.NoError(t, err)
	require.Len(t, steps, 6)
	for _, st := range steps {
		assert.Equal(t, step.StateDone, st.State)
		require.NotNil(t, st.WorkerID)
		assert.Contains(t, *st.WorkerID, "worker-")
	}
}

func TestScheduler_BoundsConcurrentWorkers(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})

	release := make(chan struct{})
	runner := &fakeRunner{block: release}

	cfg := testSchedulerConfig()
	cfg.WorkerCount = 2
	s := NewScheduler(jobs, runner, cfg)

	for i := 0; i < 4; i++ {
		submitTestJob(t, jobs)
	}

	s.Start(context.Background())
	defer s.Stop()

	// Two steps get claimed; the other two wait for free slots.
	require.Eventually(t, func() bool {
		return runner.activeCount() == 2
	}, 5*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond) // several more ticks with the pool full
	assert.Equal(t, 2, runner.activeCount())
	assert.Equal(t, 2, s.Health().InFlight)

	close(release)

	require.Eventually(t, func() bool {
		return runner.startedCount() == 4
	}, 5*time.Second, 10*time.Millisecond)
	assert.LessOrEqual(t, runner.peakActive(), 2)
}

func TestScheduler_FunnelsRunnerErrorsIntoFailStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})
	runner := &fakeRunner{runErr: errors.New("executor connection refused")}

	s := NewScheduler(jobs, runner, testSchedulerConfig())
	s.Start(context.Background())
	defer s.Stop()

	jb := submitTestJob(t, jobs)

	// Three failed attempts exhaust the step's retry budget.
	require.Eventually(t, func() bool {
		got, err := jobs.GetJobByID(context.Background(), jb.ID)
		return err == nil && got.State == job.StateFailed
	}, 10*time.Second, 20*time.Millisecond)

	steps, err := jobs.GetSteps(context.Background(), jb.ID)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, step.StateFailed, steps[0].State)
	assert.Equal(t, 3, steps[0].Attempt)
	assert.Equal(t, 3, runner.startedCount())
}

func TestScheduler_RecoversFromRunnerPanic(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})
	runner := &fakeRunner{panics: true}

	s := NewScheduler(jobs, runner, testSchedulerConfig())
	s.Start(context.Background())
	defer s.Stop()

	jb := submitTestJob(t, jobs)

	require.Eventually(t, func() bool {
		got, err := jobs.GetJobByID(context.Background(), jb.ID)
		return err == nil && got.State == job.StateFailed
	}, 10*time.Second, 20*time.Millisecond)

	// The scheduler survived three panics and kept claiming.
	assert.Equal(t, 3, runner.startedCount())
	assert.Equal(t, 3, s.Health().StepsProcessed)
	assert.Zero(t, s.Health().InFlight)
}

func TestScheduler_ReclaimsStalledSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})
	ctx := context.Background()

	jb := submitTestJob(t, jobs)
	st, err := jobs.ClaimNextStep(ctx, "worker-dead")
	require.NoError(t, err)
	require.Equal(t, jb.ID, st.JobID)

	// Backdate the heartbeat as if the worker died ten minutes ago.
	err = client.Client.Step.UpdateOneID(st.ID).
		SetHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := testSchedulerConfig()
	cfg.TickInterval = time.Hour // isolate the reclaim driver
	cfg.ReclaimInterval = 50 * time.Millisecond

	s := NewScheduler(jobs, &fakeRunner{}, cfg)
	s.Start(ctx)
	defer s.Stop()

	require.Eventually(t, func() bool {
		got, err := client.Client.Step.Get(ctx, st.ID)
		return err == nil && got.State == step.StatePending && got.Attempt == 1
	}, 5*time.Second, 20*time.Millisecond, "stalled step should return to the queue")
}

func TestScheduler_StopWaitsForInFlight(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})

	release := make(chan struct{})
	started := make(chan string, 1)
	runner := &fakeRunner{block: release, started: started, complete: jobs}

	s := NewScheduler(jobs, runner, testSchedulerConfig())
	s.Start(context.Background())

	jb := submitTestJob(t, jobs)
	<-started // a worker is mid-step

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a step was still running")
	case <-time.After(150 * time.Millisecond):
	}

	close(release)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after the step finished")
	}

	// The in-flight step ran to completion during shutdown.
	steps, err := jobs.GetSteps(context.Background(), jb.ID)
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	assert.Equal(t, step.StateDone, steps[0].State)
}

func TestScheduler_StopAbandonsAfterGracefulTimeout(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})

	release := make(chan struct{})
	started := make(chan string, 1)
	runner := &fakeRunner{block: release, started: started}

	cfg := testSchedulerConfig()
	cfg.GracefulShutdownTimeout = 100 * time.Millisecond

	s := NewScheduler(jobs, runner, cfg)
	s.Start(context.Background())

	jb := submitTestJob(t, jobs)
	stepID := <-started

	start := time.Now()
	s.Stop()
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)

	// The abandoned step stays RUNNING; the stall sweep reclaims it later.
	got, err := client.Client.Step.Get(context.Background(), stepID)
	require.NoError(t, err)
	assert.Equal(t, jb.ID, got.JobID)
	assert.Equal(t, step.StateRunning, got.State)

	close(release)
}

func TestScheduler_IdlesOnEmptyQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client, noopWorkspaces{})
	runner := &fakeRunner{}

	s := NewScheduler(jobs, runner, testSchedulerConfig())
	s.Start(context.Background())

	time.Sleep(100 * time.Millisecond)
	s.Stop()

	assert.Zero(t, runner.startedCount())
	assert.Zero(t, s.Health().InFlight)
	assert.Zero(t, s.Health().StepsProcessed)
	assert.Equal(t, 4, s.Health().WorkerSlots)
}
