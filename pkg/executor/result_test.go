package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionResult_Observation(t *testing.T) {
	tests := []struct {
		name   string
		result ExecutionResult
		want   string
	}{
		{
			name:   "stdout only",
			result: ExecutionResult{ExitCode: 0, Stdout: "pom.xml\nsrc\n"},
			want:   "stdout:\npom.xml\nsrc\n\nexit_code: 0",
		},
		{
			name:   "stderr only",
			result: ExecutionResult{ExitCode: 1, Stderr: "NameError: name 'x' is not defined\n"},
			want:   "stderr:\nNameError: name 'x' is not defined\n\nexit_code: 1",
		},
		{
			name:   "stdout and stderr separated by blank line",
			result: ExecutionResult{ExitCode: 1, Stdout: "partial output", Stderr: "traceback"},
			want:   "stdout:\npartial output\n\nstderr:\ntraceback\n\nexit_code: 1",
		},
		{
			name:   "no output",
			result: ExecutionResult{ExitCode: 0},
			want:   "(no output)\n\nexit_code: 0",
		},
		{
			name:   "whitespace-only streams count as no output",
			result: ExecutionResult{ExitCode: 0, Stdout: "  \n\t\n", Stderr: "\n"},
			want:   "(no output)\n\nexit_code: 0",
		},
		{
			name: "error type appended",
			result: ExecutionResult{
				ExitCode:  -1,
				Stderr:    "killed after 300s",
				ErrorType: ptr(ErrorTypeTimeout),
			},
			want: "stderr:\nkilled after 300s\n\nexit_code: -1\nerror_type: TIMEOUT",
		},
		{
			name: "policy violation",
			result: ExecutionResult{
				ExitCode:  -1,
				ErrorType: ptr(ErrorTypePolicyViolation),
			},
			want: "(no output)\n\nexit_code: -1\nerror_type: POLICY_VIOLATION",
		},
		{
			name:   "trailing whitespace stripped, interior preserved",
			result: ExecutionResult{ExitCode: 0, Stdout: "line1\n\nline2\n\n\n"},
			want:   "stdout:\nline1\n\nline2\n\nexit_code: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Observation())
		})
	}
}

func ptr(s string) *string { return &s }
