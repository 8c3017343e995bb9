// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "repo_url", Type: field.TypeString},
		{Name: "git_ref", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"init", "map_repo", "plan", "implement", "test", "review", "finalize", "done", "failed"}, Default: "init"},
		{Name: "workspace_ref", Type: field.TypeString},
		{Name: "snapshot_key", Type: field.TypeString, Nullable: true},
		{Name: "task_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "failing_test", Type: field.TypeString, Nullable: true},
		{Name: "consecutive_test_failures", Type: field.TypeInt, Default: 0},
		{Name: "iteration_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_state",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3]},
			},
			{
				Name:    "job_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[10]},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"repo_mapper", "planner", "implementer", "tester", "reviewer", "finalizer"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "running", "done", "failed"}, Default: "pending"},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "result_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "conversation_history", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "job_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_jobs_steps",
				Columns:    []*schema.Column{StepsColumns[11]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_job_id",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[11]},
			},
			{
				Name:    "step_created_at",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "state = 'pending'",
				},
			},
			{
				Name:    "step_state_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[2], StepsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		StepsTable,
	}
)

func init() {
	StepsTable.ForeignKeys[0].RefTable = JobsTable
}
