package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codepilot-ai/codepilot/pkg/config"
	"github.com/codepilot-ai/codepilot/pkg/services"
)

// Scheduler claims pending steps on a fixed tick and runs each one in its
// own worker goroutine, bounded by a slot pool. A second timer reclaims
// steps whose workers stopped heartbeating.
type Scheduler struct {
	jobs   *services.JobService
	runner StepRunner
	cfg    *config.SchedulerConfig

	slots    chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu             sync.RWMutex
	inFlight       int
	stepsProcessed int
}

// NewScheduler creates a scheduler. Start must be called to begin ticking.
func NewScheduler(jobs *services.JobService, runner StepRunner, cfg *config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		jobs:   jobs,
		runner: runner,
		cfg:    cfg,
		slots:  make(chan struct{}, cfg.WorkerCount),
		stopCh: make(chan struct{}),
	}
}

// Start launches the claim and reclaim loops. Non-blocking.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Starting step scheduler",
		"tick_interval", s.cfg.TickInterval,
		"worker_count", s.cfg.WorkerCount,
		"reclaim_interval", s.cfg.ReclaimInterval)

	s.wg.Add(2)
	go s.runClaimLoop(ctx)
	go s.runReclaimLoop(ctx)
}

// Stop signals both loops to exit and waits for in-flight steps, up to the
// configured graceful shutdown timeout. Abandoned steps stay RUNNING and
// are reclaimed through the heartbeat stall path after restart. Safe to
// call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Step scheduler stopped")
	case <-time.After(s.cfg.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timed out, abandoning in-flight steps",
			"in_flight", s.Health().InFlight)
	}
}

// runClaimLoop ticks until stopped. Each tick claims at most one step so
// claim transactions stay short; bursts drain across successive ticks.
func (s *Scheduler) runClaimLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick claims one pending step and hands it to a worker. The slot is taken
// before the claim so a saturated pool skips the tick instead of parking a
// claimed step whose heartbeat would go stale.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.tryAcquireSlot() {
		return
	}

	workerID := "worker-" + uuid.New().String()[:8]

	st, err := s.jobs.ClaimNextStep(ctx, workerID)
	if err != nil {
		s.releaseSlot()
		if !errors.Is(err, services.ErrNoPendingSteps) {
			slog.Error("Failed to claim step", "worker_id", workerID, "error", err)
		}
		return
	}

	s.dispatch(ctx, st)
}

// runReclaimLoop periodically fails RUNNING steps with stale heartbeats so
// they become claimable again.
func (s *Scheduler) runReclaimLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.ReclaimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.jobs.ReclaimStalledSteps(ctx, s.cfg.StallThreshold); err != nil {
				slog.Error("Stall reclamation failed", "error", err)
			}
		}
	}
}

// Health reports current scheduler activity.
func (s *Scheduler) Health() Health {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Health{
		InFlight:       s.inFlight,
		WorkerSlots:    cap(s.slots),
		StepsProcessed: s.stepsProcessed,
	}
}
