package prompt

import (
	"strings"
	"testing"

	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/pkg/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNewBuilder_RequiresToolDocs(t *testing.T) {
	assert.Panics(t, func() { NewBuilder("") })
}

func TestSystemPrompt_Composition(t *testing.T) {
	b := NewBuilder("TOOLDOCS\n")

	got := b.SystemPrompt(step.RoleRepoMapper)
	assert.Equal(t, repoMapperIntro+"TOOLDOCS\n"+repoMapperOutput, got)

	for _, role := range roleOrder {
		p := b.SystemPrompt(role)
		require.NotEmpty(t, p, "role %s", role)
		assert.Contains(t, p, "CodePilot, an automated Java bug-repair system")
		assert.Contains(t, p, "TOOLDOCS")
		assert.Contains(t, p, "WHAT TO PRODUCE:")
		assert.Contains(t, p, "<result>...</result>")
	}
}

func TestSystemPrompt_WithRegistryDocs(t *testing.T) {
	registry := skill.NewRegistry(skill.Catalog()...)
	b := NewBuilder(registry.ToolDocumentation())

	p := b.SystemPrompt(step.RoleTester)
	assert.True(t, strings.HasPrefix(p, "You are the Tester agent"))
	assert.Contains(t, p, "AVAILABLE TOOLS:")
	assert.Contains(t, p, "run_command(")
	assert.Contains(t, p, `"tests_passed": true | false`)

	assert.Contains(t, b.SystemPrompt(step.RoleFinalizer), "You are the Finalizer agent")
}

func TestInitialMessage_TaskContext(t *testing.T) {
	b := NewBuilder("TOOLDOCS\n")

	t.Run("repo mapper sees the task context", func(t *testing.T) {
		got := b.InitialMessage(step.RoleRepoMapper,
			ptr("NPE in InvoiceService.total()"),
			ptr("InvoiceServiceTest#testTotal"),
			nil)

		want := "You are starting your task as the REPO_MAPPER agent.\n\n" +
			"=== TASK CONTEXT ===\n" +
			"Bug description : NPE in InvoiceService.total()\n" +
			"Failing test    : InvoiceServiceTest#testTotal\n" +
			"=== END TASK CONTEXT ===\n\n" +
			repoMapperInstruction
		assert.Equal(t, want, got)
	})

	t.Run("partial task context renders only known fields", func(t *testing.T) {
		got := b.InitialMessage(step.RolePlanner, ptr("Off-by-one in pager"), nil, nil)
		assert.Contains(t, got, "Bug description : Off-by-one in pager\n")
		assert.NotContains(t, got, "Failing test")
	})

	t.Run("later roles do not repeat the task context", func(t *testing.T) {
		got := b.InitialMessage(step.RoleImplementer, ptr("bug"), ptr("Test#x"), nil)
		assert.NotContains(t, got, "TASK CONTEXT")
		assert.True(t, strings.HasSuffix(got, implementerInstruction))
	})

	t.Run("no context block when nothing was submitted", func(t *testing.T) {
		got := b.InitialMessage(step.RoleRepoMapper, nil, nil, nil)
		assert.Equal(t, "You are starting your task as the REPO_MAPPER agent.\n\n"+repoMapperInstruction, got)
	})
}

func TestInitialMessage_PriorResults(t *testing.T) {
	b := NewBuilder("TOOLDOCS\n")

	prior := map[step.Role]string{
		step.RolePlanner:    `{"root_cause": "inverted null check"}`,
		step.RoleRepoMapper: `{"file_count": 12}`,
	}
	got := b.InitialMessage(step.RoleImplementer, nil, nil, prior)

	assert.Contains(t, got, "=== CONTEXT FROM PREVIOUS AGENTS ===\n")
	assert.Contains(t, got, "[ REPO_MAPPER result ]\n{\"file_count\": 12}\n\n")
	assert.Contains(t, got, "[ PLANNER result ]\n{\"root_cause\": \"inverted null check\"}\n\n")
	assert.Contains(t, got, "=== END CONTEXT ===\n\n")

	// Pipeline order, not map order
	assert.Less(t,
		strings.Index(got, "[ REPO_MAPPER result ]"),
		strings.Index(got, "[ PLANNER result ]"))
}

func TestInitialMessage_ReplanInstruction(t *testing.T) {
	b := NewBuilder("TOOLDOCS\n")

	t.Run("failed tester switches planner to revision mode", func(t *testing.T) {
		prior := map[step.Role]string{
			step.RoleTester: `{"tests_passed": false, "failures": 2}`,
		}
		got := b.InitialMessage(step.RolePlanner, nil, nil, prior)
		assert.True(t, strings.HasSuffix(got, replanInstruction))
	})

	t.Run("compact json is also detected", func(t *testing.T) {
		prior := map[step.Role]string{step.RoleTester: `{"tests_passed":false}`}
		got := b.InitialMessage(step.RolePlanner, nil, nil, prior)
		assert.Contains(t, got, "REVISED repair plan")
	})

	t.Run("passing tester keeps the normal instruction", func(t *testing.T) {
		prior := map[step.Role]string{step.RoleTester: `{"tests_passed": true}`}
		got := b.InitialMessage(step.RolePlanner, nil, nil, prior)
		assert.True(t, strings.HasSuffix(got, plannerInstruction))
	})

	t.Run("first planning run has no tester result", func(t *testing.T) {
		got := b.InitialMessage(step.RolePlanner, nil, nil, nil)
		assert.True(t, strings.HasSuffix(got, plannerInstruction))
	})
}

func TestInitialMessage_Finalizer(t *testing.T) {
	b := NewBuilder("TOOLDOCS\n")

	prior := map[step.Role]string{
		step.RoleReviewer: `{"approved": true}`,
	}
	got := b.InitialMessage(step.RoleFinalizer, nil, nil, prior)
	assert.Contains(t, got, "You are starting your task as the FINALIZER agent.")
	assert.True(t, strings.HasSuffix(got, finalizerInstruction))
}
