package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity.
// One agent activation within a job's pipeline. Steps are the unit of
// scheduling: workers claim pending steps with FOR UPDATE SKIP LOCKED.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Enum("role").
			Values("repo_mapper", "planner", "implementer", "tester", "reviewer", "finalizer"),
		field.Enum("state").
			Values("pending", "running", "done", "failed").
			Default("pending"),
		field.Int("attempt").
			Default(0).
			Comment("Incremented on each running->failure transition"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Claimer identity; null while pending"),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("Last liveness signal; drives stall reclamation"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Text("result_json").
			Optional().
			Nillable().
			Comment("Agent result payload; set exactly when the step is done"),
		field.Text("conversation_history").
			Optional().
			Nillable().
			Comment("Serialized turns for crash resume"),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("steps").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		// Claim scan: oldest pending step first.
		index.Fields("created_at").
			Annotations(entsql.IndexWhere("state = 'pending'")),
		// Reclaim scan: running steps by heartbeat age.
		index.Fields("state", "heartbeat_at"),
	}
}
