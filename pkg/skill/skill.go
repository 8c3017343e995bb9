// Package skill provides the in-process tool catalog exposed to agents.
//
// Most skills are descriptors only: they document Python functions available
// inside the workspace sandbox, and agents invoke them by emitting code.
// In-process skills additionally carry an Execute handler that runs inside
// the orchestrator.
package skill

import (
	"context"
	"fmt"
)

// Target routes a skill invocation.
type Target string

const (
	// TargetExecutor skills run inside the workspace sandbox. Agents call
	// them from emitted code; Execute is nil.
	TargetExecutor Target = "executor"

	// TargetInProcess skills run inside the orchestrator via Registry.Execute.
	TargetInProcess Target = "in_process"
)

// Policy constrains what a skill may do. NetworkAllowed is false for every
// executor-routed skill: sandbox pods have no egress.
type Policy struct {
	NetworkAllowed  bool
	FilesystemWrite bool
	TimeoutSec      int
}

// ReadOnlyPolicy is the policy for sandbox skills that only inspect the
// workspace.
func ReadOnlyPolicy(timeoutSec int) Policy {
	return Policy{TimeoutSec: timeoutSec}
}

// WritePolicy is the policy for sandbox skills that mutate the workspace.
func WritePolicy(timeoutSec int) Policy {
	return Policy{FilesystemWrite: true, TimeoutSec: timeoutSec}
}

// Handler executes an in-process skill.
type Handler func(ctx context.Context, input string) (any, error)

// Skill describes one tool capability exposed to agents.
type Skill struct {
	Name        string
	Version     string
	Signature   string
	Description string
	Target      Target
	Policy      Policy

	// Execute is set only for TargetInProcess skills.
	Execute Handler
}

// NotFoundError indicates a lookup for an unregistered skill name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No skill registered with name: '%s'", e.Name)
}
