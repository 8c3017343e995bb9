package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// Execution outcome tags recorded on the calls counter.
const (
	StatusSuccess         = "success"
	StatusTimeout         = "timeout"
	StatusPolicyViolation = "policy_violation"
	StatusParseError      = "parse_error"
	StatusExecutorError   = "executor_error"
)

// Classified execution errors. Handlers wrap these so the registry can tag
// the outcome; anything else counts as executor_error.
var (
	ErrPolicyViolation = errors.New("policy violation")
	ErrParse           = errors.New("parse error")
)

// Registry is the process-local skill catalog, indexed by name.
type Registry struct {
	skills  map[string]*Skill
	metrics *skillMetrics
	logger  *slog.Logger
}

// NewRegistry indexes the given skills by name. The catalog is assembled
// explicitly at process start; duplicate names panic.
func NewRegistry(skills ...*Skill) *Registry {
	metrics, err := newSkillMetrics()
	if err != nil {
		panic(fmt.Sprintf("skill: failed to create metric instruments: %v", err))
	}

	r := &Registry{
		skills:  make(map[string]*Skill, len(skills)),
		metrics: metrics,
		logger:  slog.Default(),
	}
	for _, s := range skills {
		if _, exists := r.skills[s.Name]; exists {
			panic(fmt.Sprintf("skill: duplicate skill name %q", s.Name))
		}
		r.skills[s.Name] = s
		r.logger.Info("Registered skill",
			"skill", s.Name,
			"version", s.Version,
			"target", string(s.Target))
	}
	return r
}

// Get returns the skill registered under name.
func (r *Registry) Get(name string) (*Skill, error) {
	s, ok := r.skills[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return s, nil
}

// Names returns all registered skill names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.skills))
	for name := range r.skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs an in-process skill with timing and outcome metrics.
// Executor-target skills are never executed through the registry; agents
// invoke them from emitted code.
func (r *Registry) Execute(ctx context.Context, name, input string) (any, error) {
	s, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if s.Target != TargetInProcess || s.Execute == nil {
		return nil, fmt.Errorf("skill '%s' runs in the execution service, not in-process", name)
	}

	if s.Policy.TimeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.Policy.TimeoutSec)*time.Second)
		defer cancel()
	}

	start := time.Now()
	result, err := s.Execute(ctx, input)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	r.metrics.recordCall(ctx, s, time.Since(start), statusFor(err))
	return result, err
}

func statusFor(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, ErrPolicyViolation):
		return StatusPolicyViolation
	case errors.Is(err, ErrParse):
		return StatusParseError
	default:
		return StatusExecutorError
	}
}

const toolDocsPreamble = "You have access to the following tool functions. Call them by writing\n" +
	"Python code blocks (```python ... ```) which will be executed in a\n" +
	"sandbox and the output returned to you as an observation.\n" +
	"\n" +
	"AVAILABLE TOOLS:\n"

const toolDocsRules = "RULES:\n" +
	"  - Write one code block per turn; wait for the observation before continuing.\n" +
	"  - Use print() to output information you want to see.\n" +
	"  - When you have gathered enough information, write your final answer\n" +
	"    inside <result>...</result> tags. This ends your turn.\n"

// ToolDocumentation renders the AVAILABLE TOOLS block injected into every
// agent's system prompt. Because it is derived from the live catalog, the
// documentation is always in sync with the registered skill set.
func (r *Registry) ToolDocumentation() string {
	skills := make([]*Skill, 0, len(r.skills))
	for _, s := range r.skills {
		skills = append(skills, s)
	}
	// Sandbox skills first (agents call these directly), then in-process
	// skills (informational only).
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Target != skills[j].Target {
			return skills[i].Target == TargetExecutor
		}
		return skills[i].Name < skills[j].Name
	})

	var b strings.Builder
	b.WriteString(toolDocsPreamble)
	for _, s := range skills {
		b.WriteString("  " + s.Signature + "\n")
		b.WriteString("      " + s.Description + "\n\n")
	}
	b.WriteString(toolDocsRules)
	return b.String()
}
