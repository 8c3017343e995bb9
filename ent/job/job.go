// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldRepoURL holds the string denoting the repo_url field in the database.
	FieldRepoURL = "repo_url"
	// FieldGitRef holds the string denoting the git_ref field in the database.
	FieldGitRef = "git_ref"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldWorkspaceRef holds the string denoting the workspace_ref field in the database.
	FieldWorkspaceRef = "workspace_ref"
	// FieldSnapshotKey holds the string denoting the snapshot_key field in the database.
	FieldSnapshotKey = "snapshot_key"
	// FieldTaskDescription holds the string denoting the task_description field in the database.
	FieldTaskDescription = "task_description"
	// FieldFailingTest holds the string denoting the failing_test field in the database.
	FieldFailingTest = "failing_test"
	// FieldConsecutiveTestFailures holds the string denoting the consecutive_test_failures field in the database.
	FieldConsecutiveTestFailures = "consecutive_test_failures"
	// FieldIterationCount holds the string denoting the iteration_count field in the database.
	FieldIterationCount = "iteration_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "steps"
	// StepsInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	StepsInverseTable = "steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldRepoURL,
	FieldGitRef,
	FieldState,
	FieldWorkspaceRef,
	FieldSnapshotKey,
	FieldTaskDescription,
	FieldFailingTest,
	FieldConsecutiveTestFailures,
	FieldIterationCount,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConsecutiveTestFailures holds the default value on creation for the "consecutive_test_failures" field.
	DefaultConsecutiveTestFailures int
	// DefaultIterationCount holds the default value on creation for the "iteration_count" field.
	DefaultIterationCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateInit is the default value of the State enum.
const DefaultState = StateInit

// State values.
const (
	StateInit      State = "init"
	StateMapRepo   State = "map_repo"
	StatePlan      State = "plan"
	StateImplement State = "implement"
	StateTest      State = "test"
	StateReview    State = "review"
	StateFinalize  State = "finalize"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateInit, StateMapRepo, StatePlan, StateImplement, StateTest, StateReview, StateFinalize, StateDone, StateFailed:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRepoURL orders the results by the repo_url field.
func ByRepoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoURL, opts...).ToFunc()
}

// ByGitRef orders the results by the git_ref field.
func ByGitRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGitRef, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByWorkspaceRef orders the results by the workspace_ref field.
func ByWorkspaceRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceRef, opts...).ToFunc()
}

// BySnapshotKey orders the results by the snapshot_key field.
func BySnapshotKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotKey, opts...).ToFunc()
}

// ByTaskDescription orders the results by the task_description field.
func ByTaskDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDescription, opts...).ToFunc()
}

// ByFailingTest orders the results by the failing_test field.
func ByFailingTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailingTest, opts...).ToFunc()
}

// ByConsecutiveTestFailures orders the results by the consecutive_test_failures field.
func ByConsecutiveTestFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveTestFailures, opts...).ToFunc()
}

// ByIterationCount orders the results by the iteration_count field.
func ByIterationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterationCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
