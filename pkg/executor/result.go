package executor

import (
	"fmt"
	"strings"
	"unicode"
)

// Sandbox-reported error classifications. A nil ErrorType means the code ran
// to completion (successfully or not, per ExitCode).
const (
	ErrorTypeTimeout         = "TIMEOUT"
	ErrorTypePolicyViolation = "POLICY_VIOLATION"
)

// ExecutionResult is the outcome of running a code block in the sandbox.
type ExecutionResult struct {
	ExitCode   int     `json:"exit_code"`
	Stdout     string  `json:"stdout"`
	Stderr     string  `json:"stderr"`
	ElapsedSec float64 `json:"elapsed_sec"`
	ErrorType  *string `json:"error_type"`
}

// Observation formats the result as the observation text fed back to the
// agent. Whitespace-only streams are omitted entirely.
func (r *ExecutionResult) Observation() string {
	var parts []string
	if strings.TrimSpace(r.Stdout) != "" {
		parts = append(parts, "stdout:\n"+strings.TrimRightFunc(r.Stdout, unicode.IsSpace))
	}
	if strings.TrimSpace(r.Stderr) != "" {
		parts = append(parts, "stderr:\n"+strings.TrimRightFunc(r.Stderr, unicode.IsSpace))
	}

	body := "(no output)"
	if len(parts) > 0 {
		body = strings.Join(parts, "\n\n")
	}

	body += fmt.Sprintf("\n\nexit_code: %d", r.ExitCode)
	if r.ErrorType != nil {
		body += "\nerror_type: " + *r.ErrorType
	}
	return body
}
