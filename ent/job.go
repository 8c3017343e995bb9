// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codepilot-ai/codepilot/ent/job"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Repository to clone into the workspace
	RepoURL string `json:"repo_url,omitempty"`
	// Branch, tag, or commit to check out
	GitRef string `json:"git_ref,omitempty"`
	// State holds the value of the "state" field.
	State job.State `json:"state,omitempty"`
	// Workspace identifier at the execution service (equals job id)
	WorkspaceRef string `json:"workspace_ref,omitempty"`
	// Latest pre-implementation workspace snapshot
	SnapshotKey *string `json:"snapshot_key,omitempty"`
	// Free-form bug description from the submitter
	TaskDescription *string `json:"task_description,omitempty"`
	// Identifier of the failing test, if known
	FailingTest *string `json:"failing_test,omitempty"`
	// Tester failures since the last pass; drives backtracking
	ConsecutiveTestFailures int `json:"consecutive_test_failures,omitempty"`
	// Number of plan->implement->test iterations triggered by test failures
	IterationCount int `json:"iteration_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*Step `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) StepsOrErr() ([]*Step, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldConsecutiveTestFailures, job.FieldIterationCount:
			values[i] = new(sql.NullInt64)
		case job.FieldID, job.FieldRepoURL, job.FieldGitRef, job.FieldState, job.FieldWorkspaceRef, job.FieldSnapshotKey, job.FieldTaskDescription, job.FieldFailingTest:
			values[i] = new(sql.NullString)
		case job.FieldCreatedAt, job.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (_m *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case job.FieldRepoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_url", values[i])
			} else if value.Valid {
				_m.RepoURL = value.String
			}
		case job.FieldGitRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field git_ref", values[i])
			} else if value.Valid {
				_m.GitRef = value.String
			}
		case job.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = job.State(value.String)
			}
		case job.FieldWorkspaceRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_ref", values[i])
			} else if value.Valid {
				_m.WorkspaceRef = value.String
			}
		case job.FieldSnapshotKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_key", values[i])
			} else if value.Valid {
				_m.SnapshotKey = new(string)
				*_m.SnapshotKey = value.String
			}
		case job.FieldTaskDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_description", values[i])
			} else if value.Valid {
				_m.TaskDescription = new(string)
				*_m.TaskDescription = value.String
			}
		case job.FieldFailingTest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failing_test", values[i])
			} else if value.Valid {
				_m.FailingTest = new(string)
				*_m.FailingTest = value.String
			}
		case job.FieldConsecutiveTestFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_test_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveTestFailures = int(value.Int64)
			}
		case job.FieldIterationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration_count", values[i])
			} else if value.Valid {
				_m.IterationCount = int(value.Int64)
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case job.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (_m *Job) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the Job entity.
func (_m *Job) QuerySteps() *StepQuery {
	return NewJobClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Job) Update() *JobUpdateOne {
	return NewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Job) Unwrap() *Job {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("repo_url=")
	builder.WriteString(_m.RepoURL)
	builder.WriteString(", ")
	builder.WriteString("git_ref=")
	builder.WriteString(_m.GitRef)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("workspace_ref=")
	builder.WriteString(_m.WorkspaceRef)
	builder.WriteString(", ")
	if v := _m.SnapshotKey; v != nil {
		builder.WriteString("snapshot_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TaskDescription; v != nil {
		builder.WriteString("task_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailingTest; v != nil {
		builder.WriteString("failing_test=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("consecutive_test_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveTestFailures))
	builder.WriteString(", ")
	builder.WriteString("iteration_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.IterationCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
