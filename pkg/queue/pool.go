package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codepilot-ai/codepilot/ent"
)

// tryAcquireSlot reserves a worker slot without blocking.
func (s *Scheduler) tryAcquireSlot() bool {
	select {
	case s.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Scheduler) releaseSlot() { <-s.slots }

// dispatch runs a claimed step in its own goroutine. The caller must hold
// a slot; dispatch releases it when the step finishes.
func (s *Scheduler) dispatch(ctx context.Context, st *ent.Step) {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.releaseSlot()
		defer func() {
			s.mu.Lock()
			s.inFlight--
			s.stepsProcessed++
			s.mu.Unlock()
		}()
		s.process(ctx, st)
	}()
}

// process runs the agent loop for one step. Panics and returned errors
// both funnel into FailStep so a broken step can never take the scheduler
// down with it.
func (s *Scheduler) process(ctx context.Context, st *ent.Step) {
	log := slog.With("step_id", st.ID, "job_id", st.JobID, "role", st.Role)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic in agent loop", "panic", r)
			s.failUnhandled(st.ID, fmt.Sprintf("%v", r))
		}
	}()

	if err := s.runner.Run(ctx, st); err != nil {
		log.Error("Unhandled error in agent loop", "error", err)
		s.failUnhandled(st.ID, err.Error())
	}
}

// failUnhandled records a crash-level failure on its own context: the step
// context may already be canceled by shutdown.
func (s *Scheduler) failUnhandled(stepID, msg string) {
	if err := s.jobs.FailStep(context.Background(), stepID, "Unhandled exception: "+msg); err != nil {
		slog.Error("Failed to record step failure", "step_id", stepID, "error", err)
	}
}
