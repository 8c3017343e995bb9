package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// A job is one repair run: it owns a workspace, a pipeline of steps,
// and the backtracking budget.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("repo_url").
			Comment("Repository to clone into the workspace"),
		field.String("git_ref").
			Comment("Branch, tag, or commit to check out"),
		field.Enum("state").
			Values("init", "map_repo", "plan", "implement", "test", "review", "finalize", "done", "failed").
			Default("init"),
		field.String("workspace_ref").
			Immutable().
			Comment("Workspace identifier at the execution service (equals job id)"),
		field.String("snapshot_key").
			Optional().
			Nillable().
			Comment("Latest pre-implementation workspace snapshot"),
		field.Text("task_description").
			Optional().
			Nillable().
			Comment("Free-form bug description from the submitter"),
		field.String("failing_test").
			Optional().
			Nillable().
			Comment("Identifier of the failing test, if known"),
		field.Int("consecutive_test_failures").
			Default(0).
			Comment("Tester failures since the last pass; drives backtracking"),
		field.Int("iteration_count").
			Default(0).
			Comment("Number of plan->implement->test iterations triggered by test failures"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("state", "created_at"),
	}
}
