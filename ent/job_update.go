// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/predicate"
	"github.com/codepilot-ai/codepilot/ent/step"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *JobUpdate) SetRepoURL(v string) *JobUpdate {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRepoURL(v *string) *JobUpdate {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetGitRef sets the "git_ref" field.
func (_u *JobUpdate) SetGitRef(v string) *JobUpdate {
	_u.mutation.SetGitRef(v)
	return _u
}

// SetNillableGitRef sets the "git_ref" field if the given value is not nil.
func (_u *JobUpdate) SetNillableGitRef(v *string) *JobUpdate {
	if v != nil {
		_u.SetGitRef(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdate) SetState(v job.State) *JobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdate) SetNillableState(v *job.State) *JobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSnapshotKey sets the "snapshot_key" field.
func (_u *JobUpdate) SetSnapshotKey(v string) *JobUpdate {
	_u.mutation.SetSnapshotKey(v)
	return _u
}

// SetNillableSnapshotKey sets the "snapshot_key" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSnapshotKey(v *string) *JobUpdate {
	if v != nil {
		_u.SetSnapshotKey(*v)
	}
	return _u
}

// ClearSnapshotKey clears the value of the "snapshot_key" field.
func (_u *JobUpdate) ClearSnapshotKey() *JobUpdate {
	_u.mutation.ClearSnapshotKey()
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *JobUpdate) SetTaskDescription(v string) *JobUpdate {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTaskDescription(v *string) *JobUpdate {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// ClearTaskDescription clears the value of the "task_description" field.
func (_u *JobUpdate) ClearTaskDescription() *JobUpdate {
	_u.mutation.ClearTaskDescription()
	return _u
}

// SetFailingTest sets the "failing_test" field.
func (_u *JobUpdate) SetFailingTest(v string) *JobUpdate {
	_u.mutation.SetFailingTest(v)
	return _u
}

// SetNillableFailingTest sets the "failing_test" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFailingTest(v *string) *JobUpdate {
	if v != nil {
		_u.SetFailingTest(*v)
	}
	return _u
}

// ClearFailingTest clears the value of the "failing_test" field.
func (_u *JobUpdate) ClearFailingTest() *JobUpdate {
	_u.mutation.ClearFailingTest()
	return _u
}

// SetConsecutiveTestFailures sets the "consecutive_test_failures" field.
func (_u *JobUpdate) SetConsecutiveTestFailures(v int) *JobUpdate {
	_u.mutation.ResetConsecutiveTestFailures()
	_u.mutation.SetConsecutiveTestFailures(v)
	return _u
}

// SetNillableConsecutiveTestFailures sets the "consecutive_test_failures" field if the given value is not nil.
func (_u *JobUpdate) SetNillableConsecutiveTestFailures(v *int) *JobUpdate {
	if v != nil {
		_u.SetConsecutiveTestFailures(*v)
	}
	return _u
}

// AddConsecutiveTestFailures adds value to the "consecutive_test_failures" field.
func (_u *JobUpdate) AddConsecutiveTestFailures(v int) *JobUpdate {
	_u.mutation.AddConsecutiveTestFailures(v)
	return _u
}

// SetIterationCount sets the "iteration_count" field.
func (_u *JobUpdate) SetIterationCount(v int) *JobUpdate {
	_u.mutation.ResetIterationCount()
	_u.mutation.SetIterationCount(v)
	return _u
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableIterationCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetIterationCount(*v)
	}
	return _u
}

// AddIterationCount adds value to the "iteration_count" field.
func (_u *JobUpdate) AddIterationCount(v int) *JobUpdate {
	_u.mutation.AddIterationCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *JobUpdate) AddStepIDs(ids ...string) *JobUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *JobUpdate) AddSteps(v ...*Step) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *JobUpdate) ClearSteps() *JobUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *JobUpdate) RemoveStepIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *JobUpdate) RemoveSteps(v ...*Step) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(job.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.GitRef(); ok {
		_spec.SetField(job.FieldGitRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SnapshotKey(); ok {
		_spec.SetField(job.FieldSnapshotKey, field.TypeString, value)
	}
	if _u.mutation.SnapshotKeyCleared() {
		_spec.ClearField(job.FieldSnapshotKey, field.TypeString)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(job.FieldTaskDescription, field.TypeString, value)
	}
	if _u.mutation.TaskDescriptionCleared() {
		_spec.ClearField(job.FieldTaskDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FailingTest(); ok {
		_spec.SetField(job.FieldFailingTest, field.TypeString, value)
	}
	if _u.mutation.FailingTestCleared() {
		_spec.ClearField(job.FieldFailingTest, field.TypeString)
	}
	if value, ok := _u.mutation.ConsecutiveTestFailures(); ok {
		_spec.SetField(job.FieldConsecutiveTestFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveTestFailures(); ok {
		_spec.AddField(job.FieldConsecutiveTestFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IterationCount(); ok {
		_spec.SetField(job.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationCount(); ok {
		_spec.AddField(job.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepsTable,
			Columns: []string{job.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepsTable,
			Columns: []string{job.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepsTable,
			Columns: []string{job.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetRepoURL sets the "repo_url" field.
func (_u *JobUpdateOne) SetRepoURL(v string) *JobUpdateOne {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRepoURL(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetGitRef sets the "git_ref" field.
func (_u *JobUpdateOne) SetGitRef(v string) *JobUpdateOne {
	_u.mutation.SetGitRef(v)
	return _u
}

// SetNillableGitRef sets the "git_ref" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableGitRef(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetGitRef(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdateOne) SetState(v job.State) *JobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableState(v *job.State) *JobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSnapshotKey sets the "snapshot_key" field.
func (_u *JobUpdateOne) SetSnapshotKey(v string) *JobUpdateOne {
	_u.mutation.SetSnapshotKey(v)
	return _u
}

// SetNillableSnapshotKey sets the "snapshot_key" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSnapshotKey(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSnapshotKey(*v)
	}
	return _u
}

// ClearSnapshotKey clears the value of the "snapshot_key" field.
func (_u *JobUpdateOne) ClearSnapshotKey() *JobUpdateOne {
	_u.mutation.ClearSnapshotKey()
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *JobUpdateOne) SetTaskDescription(v string) *JobUpdateOne {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTaskDescription(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// ClearTaskDescription clears the value of the "task_description" field.
func (_u *JobUpdateOne) ClearTaskDescription() *JobUpdateOne {
	_u.mutation.ClearTaskDescription()
	return _u
}

// SetFailingTest sets the "failing_test" field.
func (_u *JobUpdateOne) SetFailingTest(v string) *JobUpdateOne {
	_u.mutation.SetFailingTest(v)
	return _u
}

// SetNillableFailingTest sets the "failing_test" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFailingTest(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFailingTest(*v)
	}
	return _u
}

// ClearFailingTest clears the value of the "failing_test" field.
func (_u *JobUpdateOne) ClearFailingTest() *JobUpdateOne {
	_u.mutation.ClearFailingTest()
	return _u
}

// SetConsecutiveTestFailures sets the "consecutive_test_failures" field.
func (_u *JobUpdateOne) SetConsecutiveTestFailures(v int) *JobUpdateOne {
	_u.mutation.ResetConsecutiveTestFailures()
	_u.mutation.SetConsecutiveTestFailures(v)
	return _u
}

// SetNillableConsecutiveTestFailures sets the "consecutive_test_failures" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableConsecutiveTestFailures(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetConsecutiveTestFailures(*v)
	}
	return _u
}

// AddConsecutiveTestFailures adds value to the "consecutive_test_failures" field.
func (_u *JobUpdateOne) AddConsecutiveTestFailures(v int) *JobUpdateOne {
	_u.mutation.AddConsecutiveTestFailures(v)
	return _u
}

// SetIterationCount sets the "iteration_count" field.
func (_u *JobUpdateOne) SetIterationCount(v int) *JobUpdateOne {
	_u.mutation.ResetIterationCount()
	_u.mutation.SetIterationCount(v)
	return _u
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableIterationCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetIterationCount(*v)
	}
	return _u
}

// AddIterationCount adds value to the "iteration_count" field.
func (_u *JobUpdateOne) AddIterationCount(v int) *JobUpdateOne {
	_u.mutation.AddIterationCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *JobUpdateOne) AddStepIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *JobUpdateOne) AddSteps(v ...*Step) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *JobUpdateOne) ClearSteps() *JobUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *JobUpdateOne) RemoveStepIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *JobUpdateOne) RemoveSteps(v ...*Step) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(job.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.GitRef(); ok {
		_spec.SetField(job.FieldGitRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SnapshotKey(); ok {
		_spec.SetField(job.FieldSnapshotKey, field.TypeString, value)
	}
	if _u.mutation.SnapshotKeyCleared() {
		_spec.ClearField(job.FieldSnapshotKey, field.TypeString)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(job.FieldTaskDescription, field.TypeString, value)
	}
	if _u.mutation.TaskDescriptionCleared() {
		_spec.ClearField(job.FieldTaskDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FailingTest(); ok {
		_spec.SetField(job.FieldFailingTest, field.TypeString, value)
	}
	if _u.mutation.FailingTestCleared() {
		_spec.ClearField(job.FieldFailingTest, field.TypeString)
	}
	if value, ok := _u.mutation.ConsecutiveTestFailures(); ok {
		_spec.SetField(job.FieldConsecutiveTestFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveTestFailures(); ok {
		_spec.AddField(job.FieldConsecutiveTestFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IterationCount(); ok {
		_spec.SetField(job.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationCount(); ok {
		_spec.AddField(job.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepsTable,
			Columns: []string{job.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepsTable,
			Columns: []string{job.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepsTable,
			Columns: []string{job.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
