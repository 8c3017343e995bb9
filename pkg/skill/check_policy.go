package skill

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// maxPatchLOC is the changed-line count above which a patch is rejected.
const maxPatchLOC = 300

// Patterns applied to added lines (lines starting with '+' in the diff).
var (
	disabledTestPattern = regexp.MustCompile(`^\+.*@(Ignore|Disabled)\b`)
	secretPattern       = regexp.MustCompile(`(?i)^\+.*(password|api.?key|secret|token)\s*=\s*["'][^"']{4,}["']`)
)

// PolicyReport is the result of checking a unified diff against the hard
// repair rules.
type PolicyReport struct {
	Approved     bool     `json:"approved"`
	Violations   []string `json:"violations"`
	LinesAdded   int      `json:"lines_added"`
	LinesRemoved int      `json:"lines_removed"`
}

// HasViolations reports whether any rule was broken.
func (r *PolicyReport) HasViolations() bool {
	return len(r.Violations) > 0
}

// checkPolicy enforces hard repair rules that an agent might miss or be
// convinced to waive: no disabled tests, no committed secrets, and a bounded
// patch size. Runs entirely in the orchestrator.
func checkPolicy(_ context.Context, diff string) (any, error) {
	if strings.TrimSpace(diff) == "" {
		return &PolicyReport{
			Approved:   false,
			Violations: []string{"Empty or null diff"},
		}, nil
	}

	var violations []string
	added, removed := 0, 0

	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			added++
			if disabledTestPattern.MatchString(line) {
				violations = append(violations, "Disabled test annotation found: "+strings.TrimSpace(line[1:]))
			}
			if secretPattern.MatchString(line) {
				violations = append(violations, "Potential secret in added code: "+strings.TrimSpace(line[1:]))
			}
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			removed++
		}
	}

	if total := added + removed; total > maxPatchLOC {
		violations = append(violations, fmt.Sprintf("Patch is %d LOC (limit: %d)", total, maxPatchLOC))
	}

	return &PolicyReport{
		Approved:     len(violations) == 0,
		Violations:   violations,
		LinesAdded:   added,
		LinesRemoved: removed,
	}, nil
}
