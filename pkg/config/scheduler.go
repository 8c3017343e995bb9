package config

import "time"

// SchedulerConfig contains step scheduler and worker pool settings.
// These values control how pending steps are claimed and dispatched.
type SchedulerConfig struct {
	// TickInterval is how often the scheduler attempts to claim a step.
	TickInterval time.Duration

	// WorkerCount is the number of concurrent agent-loop workers.
	WorkerCount int

	// ReclaimInterval is how often to scan for stalled running steps.
	ReclaimInterval time.Duration

	// StallThreshold is how long a running step can go without a heartbeat
	// before it is failed and retried.
	StallThreshold time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight steps
	// to finish during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TickInterval:            2 * time.Second,
		WorkerCount:             4,
		ReclaimInterval:         60 * time.Second,
		StallThreshold:          5 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
