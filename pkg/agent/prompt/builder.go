package prompt

import (
	"strings"

	"github.com/codepilot-ai/codepilot/ent/step"
)

// Builder renders the system prompt and the opening user message for each
// pipeline step. Stateless after construction — all per-step state comes
// from parameters, so a single Builder is shared by every worker.
type Builder struct {
	systemPrompts map[step.Role]string
}

// NewBuilder creates a Builder embedding the given tool documentation.
// Panics if toolDocs is empty — callers must render it from the skill
// registry so the prompts describe the tools that actually exist.
func NewBuilder(toolDocs string) *Builder {
	if toolDocs == "" {
		panic("prompt.NewBuilder: toolDocs must not be empty")
	}
	return &Builder{systemPrompts: renderSystemPrompts(toolDocs)}
}

// SystemPrompt returns the system prompt for a pipeline role.
func (b *Builder) SystemPrompt(role step.Role) string {
	return b.systemPrompts[role]
}

// roleOrder fixes the rendering order of prior agent results so the opening
// message is deterministic regardless of map iteration.
var roleOrder = []step.Role{
	step.RoleRepoMapper,
	step.RolePlanner,
	step.RoleImplementer,
	step.RoleTester,
	step.RoleReviewer,
	step.RoleFinalizer,
}

// Role-specific opening instructions. The planner has a second variant used
// after a failed test run, pointing it at the tester's failure details.
const (
	repoMapperInstruction = "Explore the repository in the workspace and produce the required JSON summary. " +
		"Focus your analysis on the area described in the task context above."

	plannerInstruction = "Using the repository map and task context above, analyse the codebase " +
		"and produce a repair plan targeting the described bug."

	replanInstruction = "The previous implementation FAILED the tests (see TESTER result above). " +
		"Study the failure details and produce a REVISED repair plan that correctly " +
		"addresses the root cause."

	implementerInstruction = "Follow the repair plan above. Apply the changes using apply_patch() and verify."

	testerInstruction = `Run the test suite with run_command(["mvn", "-q", "test"]) and report results.`

	reviewerInstruction = `Review the repair. Run git_diff("HEAD") and assess the changes.`

	finalizerInstruction = "All pipeline stages are complete. Summarise the repair run using the prior agent " +
		`results above. Optionally run git_diff("HEAD") to confirm the final patch.`
)

// InitialMessage renders the first user message for a step: optional task
// context, the results of every previously completed agent, then the
// role-specific instruction for what to do next.
func (b *Builder) InitialMessage(role step.Role, taskDescription, failingTest *string, priorResults map[step.Role]string) string {
	var sb strings.Builder
	sb.WriteString("You are starting your task as the " + roleName(role) + " agent.\n\n")

	// Task context goes to the agents that direct the search; later roles
	// get it second-hand through the planner's result.
	if (role == step.RoleRepoMapper || role == step.RolePlanner) && (taskDescription != nil || failingTest != nil) {
		sb.WriteString("=== TASK CONTEXT ===\n")
		if taskDescription != nil {
			sb.WriteString("Bug description : " + *taskDescription + "\n")
		}
		if failingTest != nil {
			sb.WriteString("Failing test    : " + *failingTest + "\n")
		}
		sb.WriteString("=== END TASK CONTEXT ===\n\n")
	}

	if len(priorResults) > 0 {
		sb.WriteString("=== CONTEXT FROM PREVIOUS AGENTS ===\n")
		for _, r := range roleOrder {
			json, ok := priorResults[r]
			if !ok {
				continue
			}
			sb.WriteString("[ " + roleName(r) + " result ]\n" + json + "\n\n")
		}
		sb.WriteString("=== END CONTEXT ===\n\n")
	}

	sb.WriteString(instructionFor(role, priorResults))
	return sb.String()
}

func instructionFor(role step.Role, priorResults map[step.Role]string) string {
	switch role {
	case step.RoleRepoMapper:
		return repoMapperInstruction
	case step.RolePlanner:
		if isReplan(priorResults[step.RoleTester]) {
			return replanInstruction
		}
		return plannerInstruction
	case step.RoleImplementer:
		return implementerInstruction
	case step.RoleTester:
		return testerInstruction
	case step.RoleReviewer:
		return reviewerInstruction
	case step.RoleFinalizer:
		return finalizerInstruction
	}
	return ""
}

// isReplan reports whether the most recent tester run failed, which switches
// the planner into revision mode.
func isReplan(testerResult string) bool {
	return strings.Contains(testerResult, `"tests_passed":false`) ||
		strings.Contains(testerResult, `"tests_passed": false`)
}

// roleName is the uppercase wire spelling used inside prompts (REPO_MAPPER).
func roleName(role step.Role) string {
	return strings.ToUpper(string(role))
}
