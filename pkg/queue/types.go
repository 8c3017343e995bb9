// Package queue drives the repair pipeline: a periodic tick claims pending
// steps from the database and dispatches them to a bounded worker pool that
// runs the agent loop. The database is the queue; FOR UPDATE SKIP LOCKED is
// the dequeue.
package queue

import (
	"context"

	"github.com/codepilot-ai/codepilot/ent"
)

// StepRunner executes one claimed step to completion. Implemented by
// agent.Loop. The scheduler treats a returned error as a crash and fails
// the step on the runner's behalf.
type StepRunner interface {
	Run(ctx context.Context, st *ent.Step) error
}

// Health is a point-in-time snapshot of scheduler activity.
type Health struct {
	InFlight       int `json:"in_flight"`
	WorkerSlots    int `json:"worker_slots"`
	StepsProcessed int `json:"steps_processed"`
}
