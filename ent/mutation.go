// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/predicate"
	"github.com/codepilot-ai/codepilot/ent/step"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob  = "Job"
	TypeStep = "Step"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	repo_url                     *string
	git_ref                      *string
	state                        *job.State
	workspace_ref                *string
	snapshot_key                 *string
	task_description             *string
	failing_test                 *string
	consecutive_test_failures    *int
	addconsecutive_test_failures *int
	iteration_count              *int
	additeration_count           *int
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	steps                        map[string]struct{}
	removedsteps                 map[string]struct{}
	clearedsteps                 bool
	done                         bool
	oldValue                     func(context.Context) (*Job, error)
	predicates                   []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepoURL sets the "repo_url" field.
func (m *JobMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *JobMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRepoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *JobMutation) ResetRepoURL() {
	m.repo_url = nil
}

// SetGitRef sets the "git_ref" field.
func (m *JobMutation) SetGitRef(s string) {
	m.git_ref = &s
}

// GitRef returns the value of the "git_ref" field in the mutation.
func (m *JobMutation) GitRef() (r string, exists bool) {
	v := m.git_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldGitRef returns the old "git_ref" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldGitRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGitRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGitRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGitRef: %w", err)
	}
	return oldValue.GitRef, nil
}

// ResetGitRef resets all changes to the "git_ref" field.
func (m *JobMutation) ResetGitRef() {
	m.git_ref = nil
}

// SetState sets the "state" field.
func (m *JobMutation) SetState(j job.State) {
	m.state = &j
}

// State returns the value of the "state" field in the mutation.
func (m *JobMutation) State() (r job.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldState(ctx context.Context) (v job.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *JobMutation) ResetState() {
	m.state = nil
}

// SetWorkspaceRef sets the "workspace_ref" field.
func (m *JobMutation) SetWorkspaceRef(s string) {
	m.workspace_ref = &s
}

// WorkspaceRef returns the value of the "workspace_ref" field in the mutation.
func (m *JobMutation) WorkspaceRef() (r string, exists bool) {
	v := m.workspace_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceRef returns the old "workspace_ref" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkspaceRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceRef: %w", err)
	}
	return oldValue.WorkspaceRef, nil
}

// ResetWorkspaceRef resets all changes to the "workspace_ref" field.
func (m *JobMutation) ResetWorkspaceRef() {
	m.workspace_ref = nil
}

// SetSnapshotKey sets the "snapshot_key" field.
func (m *JobMutation) SetSnapshotKey(s string) {
	m.snapshot_key = &s
}

// SnapshotKey returns the value of the "snapshot_key" field in the mutation.
func (m *JobMutation) SnapshotKey() (r string, exists bool) {
	v := m.snapshot_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotKey returns the old "snapshot_key" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSnapshotKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotKey: %w", err)
	}
	return oldValue.SnapshotKey, nil
}

// ClearSnapshotKey clears the value of the "snapshot_key" field.
func (m *JobMutation) ClearSnapshotKey() {
	m.snapshot_key = nil
	m.clearedFields[job.FieldSnapshotKey] = struct{}{}
}

// SnapshotKeyCleared returns if the "snapshot_key" field was cleared in this mutation.
func (m *JobMutation) SnapshotKeyCleared() bool {
	_, ok := m.clearedFields[job.FieldSnapshotKey]
	return ok
}

// ResetSnapshotKey resets all changes to the "snapshot_key" field.
func (m *JobMutation) ResetSnapshotKey() {
	m.snapshot_key = nil
	delete(m.clearedFields, job.FieldSnapshotKey)
}

// SetTaskDescription sets the "task_description" field.
func (m *JobMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *JobMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTaskDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ClearTaskDescription clears the value of the "task_description" field.
func (m *JobMutation) ClearTaskDescription() {
	m.task_description = nil
	m.clearedFields[job.FieldTaskDescription] = struct{}{}
}

// TaskDescriptionCleared returns if the "task_description" field was cleared in this mutation.
func (m *JobMutation) TaskDescriptionCleared() bool {
	_, ok := m.clearedFields[job.FieldTaskDescription]
	return ok
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *JobMutation) ResetTaskDescription() {
	m.task_description = nil
	delete(m.clearedFields, job.FieldTaskDescription)
}

// SetFailingTest sets the "failing_test" field.
func (m *JobMutation) SetFailingTest(s string) {
	m.failing_test = &s
}

// FailingTest returns the value of the "failing_test" field in the mutation.
func (m *JobMutation) FailingTest() (r string, exists bool) {
	v := m.failing_test
	if v == nil {
		return
	}
	return *v, true
}

// OldFailingTest returns the old "failing_test" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFailingTest(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailingTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailingTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailingTest: %w", err)
	}
	return oldValue.FailingTest, nil
}

// ClearFailingTest clears the value of the "failing_test" field.
func (m *JobMutation) ClearFailingTest() {
	m.failing_test = nil
	m.clearedFields[job.FieldFailingTest] = struct{}{}
}

// FailingTestCleared returns if the "failing_test" field was cleared in this mutation.
func (m *JobMutation) FailingTestCleared() bool {
	_, ok := m.clearedFields[job.FieldFailingTest]
	return ok
}

// ResetFailingTest resets all changes to the "failing_test" field.
func (m *JobMutation) ResetFailingTest() {
	m.failing_test = nil
	delete(m.clearedFields, job.FieldFailingTest)
}

// SetConsecutiveTestFailures sets the "consecutive_test_failures" field.
func (m *JobMutation) SetConsecutiveTestFailures(i int) {
	m.consecutive_test_failures = &i
	m.addconsecutive_test_failures = nil
}

// ConsecutiveTestFailures returns the value of the "consecutive_test_failures" field in the mutation.
func (m *JobMutation) ConsecutiveTestFailures() (r int, exists bool) {
	v := m.consecutive_test_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveTestFailures returns the old "consecutive_test_failures" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldConsecutiveTestFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveTestFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveTestFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveTestFailures: %w", err)
	}
	return oldValue.ConsecutiveTestFailures, nil
}

// AddConsecutiveTestFailures adds i to the "consecutive_test_failures" field.
func (m *JobMutation) AddConsecutiveTestFailures(i int) {
	if m.addconsecutive_test_failures != nil {
		*m.addconsecutive_test_failures += i
	} else {
		m.addconsecutive_test_failures = &i
	}
}

// AddedConsecutiveTestFailures returns the value that was added to the "consecutive_test_failures" field in this mutation.
func (m *JobMutation) AddedConsecutiveTestFailures() (r int, exists bool) {
	v := m.addconsecutive_test_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveTestFailures resets all changes to the "consecutive_test_failures" field.
func (m *JobMutation) ResetConsecutiveTestFailures() {
	m.consecutive_test_failures = nil
	m.addconsecutive_test_failures = nil
}

// SetIterationCount sets the "iteration_count" field.
func (m *JobMutation) SetIterationCount(i int) {
	m.iteration_count = &i
	m.additeration_count = nil
}

// IterationCount returns the value of the "iteration_count" field in the mutation.
func (m *JobMutation) IterationCount() (r int, exists bool) {
	v := m.iteration_count
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationCount returns the old "iteration_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldIterationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationCount: %w", err)
	}
	return oldValue.IterationCount, nil
}

// AddIterationCount adds i to the "iteration_count" field.
func (m *JobMutation) AddIterationCount(i int) {
	if m.additeration_count != nil {
		*m.additeration_count += i
	} else {
		m.additeration_count = &i
	}
}

// AddedIterationCount returns the value that was added to the "iteration_count" field in this mutation.
func (m *JobMutation) AddedIterationCount() (r int, exists bool) {
	v := m.additeration_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterationCount resets all changes to the "iteration_count" field.
func (m *JobMutation) ResetIterationCount() {
	m.iteration_count = nil
	m.additeration_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStepIDs adds the "steps" edge to the Step entity by ids.
func (m *JobMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the Step entity.
func (m *JobMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the Step entity was cleared.
func (m *JobMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the Step entity by IDs.
func (m *JobMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the Step entity.
func (m *JobMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *JobMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *JobMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.repo_url != nil {
		fields = append(fields, job.FieldRepoURL)
	}
	if m.git_ref != nil {
		fields = append(fields, job.FieldGitRef)
	}
	if m.state != nil {
		fields = append(fields, job.FieldState)
	}
	if m.workspace_ref != nil {
		fields = append(fields, job.FieldWorkspaceRef)
	}
	if m.snapshot_key != nil {
		fields = append(fields, job.FieldSnapshotKey)
	}
	if m.task_description != nil {
		fields = append(fields, job.FieldTaskDescription)
	}
	if m.failing_test != nil {
		fields = append(fields, job.FieldFailingTest)
	}
	if m.consecutive_test_failures != nil {
		fields = append(fields, job.FieldConsecutiveTestFailures)
	}
	if m.iteration_count != nil {
		fields = append(fields, job.FieldIterationCount)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldRepoURL:
		return m.RepoURL()
	case job.FieldGitRef:
		return m.GitRef()
	case job.FieldState:
		return m.State()
	case job.FieldWorkspaceRef:
		return m.WorkspaceRef()
	case job.FieldSnapshotKey:
		return m.SnapshotKey()
	case job.FieldTaskDescription:
		return m.TaskDescription()
	case job.FieldFailingTest:
		return m.FailingTest()
	case job.FieldConsecutiveTestFailures:
		return m.ConsecutiveTestFailures()
	case job.FieldIterationCount:
		return m.IterationCount()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case job.FieldGitRef:
		return m.OldGitRef(ctx)
	case job.FieldState:
		return m.OldState(ctx)
	case job.FieldWorkspaceRef:
		return m.OldWorkspaceRef(ctx)
	case job.FieldSnapshotKey:
		return m.OldSnapshotKey(ctx)
	case job.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case job.FieldFailingTest:
		return m.OldFailingTest(ctx)
	case job.FieldConsecutiveTestFailures:
		return m.OldConsecutiveTestFailures(ctx)
	case job.FieldIterationCount:
		return m.OldIterationCount(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case job.FieldGitRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGitRef(v)
		return nil
	case job.FieldState:
		v, ok := value.(job.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case job.FieldWorkspaceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceRef(v)
		return nil
	case job.FieldSnapshotKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotKey(v)
		return nil
	case job.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case job.FieldFailingTest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailingTest(v)
		return nil
	case job.FieldConsecutiveTestFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveTestFailures(v)
		return nil
	case job.FieldIterationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationCount(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addconsecutive_test_failures != nil {
		fields = append(fields, job.FieldConsecutiveTestFailures)
	}
	if m.additeration_count != nil {
		fields = append(fields, job.FieldIterationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldConsecutiveTestFailures:
		return m.AddedConsecutiveTestFailures()
	case job.FieldIterationCount:
		return m.AddedIterationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldConsecutiveTestFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveTestFailures(v)
		return nil
	case job.FieldIterationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterationCount(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldSnapshotKey) {
		fields = append(fields, job.FieldSnapshotKey)
	}
	if m.FieldCleared(job.FieldTaskDescription) {
		fields = append(fields, job.FieldTaskDescription)
	}
	if m.FieldCleared(job.FieldFailingTest) {
		fields = append(fields, job.FieldFailingTest)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldSnapshotKey:
		m.ClearSnapshotKey()
		return nil
	case job.FieldTaskDescription:
		m.ClearTaskDescription()
		return nil
	case job.FieldFailingTest:
		m.ClearFailingTest()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case job.FieldGitRef:
		m.ResetGitRef()
		return nil
	case job.FieldState:
		m.ResetState()
		return nil
	case job.FieldWorkspaceRef:
		m.ResetWorkspaceRef()
		return nil
	case job.FieldSnapshotKey:
		m.ResetSnapshotKey()
		return nil
	case job.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case job.FieldFailingTest:
		m.ResetFailingTest()
		return nil
	case job.FieldConsecutiveTestFailures:
		m.ResetConsecutiveTestFailures()
		return nil
	case job.FieldIterationCount:
		m.ResetIterationCount()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.steps != nil {
		edges = append(edges, job.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsteps != nil {
		edges = append(edges, job.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsteps {
		edges = append(edges, job.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	role                 *step.Role
	state                *step.State
	attempt              *int
	addattempt           *int
	worker_id            *string
	heartbeat_at         *time.Time
	started_at           *time.Time
	finished_at          *time.Time
	created_at           *time.Time
	result_json          *string
	conversation_history *string
	clearedFields        map[string]struct{}
	job                  *string
	clearedjob           bool
	done                 bool
	oldValue             func(context.Context) (*Step, error)
	predicates           []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *StepMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *StepMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *StepMutation) ResetJobID() {
	m.job = nil
}

// SetRole sets the "role" field.
func (m *StepMutation) SetRole(s step.Role) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *StepMutation) Role() (r step.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldRole(ctx context.Context) (v step.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *StepMutation) ResetRole() {
	m.role = nil
}

// SetState sets the "state" field.
func (m *StepMutation) SetState(s step.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *StepMutation) State() (r step.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldState(ctx context.Context) (v step.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *StepMutation) ResetState() {
	m.state = nil
}

// SetAttempt sets the "attempt" field.
func (m *StepMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *StepMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *StepMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *StepMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *StepMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *StepMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *StepMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *StepMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[step.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *StepMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[step.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *StepMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, step.FieldWorkerID)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *StepMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *StepMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *StepMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[step.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *StepMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[step.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *StepMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, step.FieldHeartbeatAt)
}

// SetStartedAt sets the "started_at" field.
func (m *StepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[step.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, step.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *StepMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *StepMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *StepMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[step.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *StepMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *StepMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, step.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResultJSON sets the "result_json" field.
func (m *StepMutation) SetResultJSON(s string) {
	m.result_json = &s
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *StepMutation) ResultJSON() (r string, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldResultJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *StepMutation) ClearResultJSON() {
	m.result_json = nil
	m.clearedFields[step.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *StepMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[step.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *StepMutation) ResetResultJSON() {
	m.result_json = nil
	delete(m.clearedFields, step.FieldResultJSON)
}

// SetConversationHistory sets the "conversation_history" field.
func (m *StepMutation) SetConversationHistory(s string) {
	m.conversation_history = &s
}

// ConversationHistory returns the value of the "conversation_history" field in the mutation.
func (m *StepMutation) ConversationHistory() (r string, exists bool) {
	v := m.conversation_history
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationHistory returns the old "conversation_history" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldConversationHistory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationHistory: %w", err)
	}
	return oldValue.ConversationHistory, nil
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (m *StepMutation) ClearConversationHistory() {
	m.conversation_history = nil
	m.clearedFields[step.FieldConversationHistory] = struct{}{}
}

// ConversationHistoryCleared returns if the "conversation_history" field was cleared in this mutation.
func (m *StepMutation) ConversationHistoryCleared() bool {
	_, ok := m.clearedFields[step.FieldConversationHistory]
	return ok
}

// ResetConversationHistory resets all changes to the "conversation_history" field.
func (m *StepMutation) ResetConversationHistory() {
	m.conversation_history = nil
	delete(m.clearedFields, step.FieldConversationHistory)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *StepMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[step.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *StepMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *StepMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *StepMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.job != nil {
		fields = append(fields, step.FieldJobID)
	}
	if m.role != nil {
		fields = append(fields, step.FieldRole)
	}
	if m.state != nil {
		fields = append(fields, step.FieldState)
	}
	if m.attempt != nil {
		fields = append(fields, step.FieldAttempt)
	}
	if m.worker_id != nil {
		fields = append(fields, step.FieldWorkerID)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, step.FieldHeartbeatAt)
	}
	if m.started_at != nil {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, step.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, step.FieldCreatedAt)
	}
	if m.result_json != nil {
		fields = append(fields, step.FieldResultJSON)
	}
	if m.conversation_history != nil {
		fields = append(fields, step.FieldConversationHistory)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldJobID:
		return m.JobID()
	case step.FieldRole:
		return m.Role()
	case step.FieldState:
		return m.State()
	case step.FieldAttempt:
		return m.Attempt()
	case step.FieldWorkerID:
		return m.WorkerID()
	case step.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case step.FieldStartedAt:
		return m.StartedAt()
	case step.FieldFinishedAt:
		return m.FinishedAt()
	case step.FieldCreatedAt:
		return m.CreatedAt()
	case step.FieldResultJSON:
		return m.ResultJSON()
	case step.FieldConversationHistory:
		return m.ConversationHistory()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldJobID:
		return m.OldJobID(ctx)
	case step.FieldRole:
		return m.OldRole(ctx)
	case step.FieldState:
		return m.OldState(ctx)
	case step.FieldAttempt:
		return m.OldAttempt(ctx)
	case step.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case step.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case step.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case step.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case step.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case step.FieldResultJSON:
		return m.OldResultJSON(ctx)
	case step.FieldConversationHistory:
		return m.OldConversationHistory(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case step.FieldRole:
		v, ok := value.(step.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case step.FieldState:
		v, ok := value.(step.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case step.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case step.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case step.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case step.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case step.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case step.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case step.FieldResultJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	case step.FieldConversationHistory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationHistory(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, step.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case step.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case step.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldWorkerID) {
		fields = append(fields, step.FieldWorkerID)
	}
	if m.FieldCleared(step.FieldHeartbeatAt) {
		fields = append(fields, step.FieldHeartbeatAt)
	}
	if m.FieldCleared(step.FieldStartedAt) {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.FieldCleared(step.FieldFinishedAt) {
		fields = append(fields, step.FieldFinishedAt)
	}
	if m.FieldCleared(step.FieldResultJSON) {
		fields = append(fields, step.FieldResultJSON)
	}
	if m.FieldCleared(step.FieldConversationHistory) {
		fields = append(fields, step.FieldConversationHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case step.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case step.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case step.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case step.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	case step.FieldConversationHistory:
		m.ClearConversationHistory()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldJobID:
		m.ResetJobID()
		return nil
	case step.FieldRole:
		m.ResetRole()
		return nil
	case step.FieldState:
		m.ResetState()
		return nil
	case step.FieldAttempt:
		m.ResetAttempt()
		return nil
	case step.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case step.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case step.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case step.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case step.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case step.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	case step.FieldConversationHistory:
		m.ResetConversationHistory()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, step.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, step.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	switch name {
	case step.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	switch name {
	case step.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	switch name {
	case step.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Step edge %s", name)
}
