// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/step"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetRepoURL sets the "repo_url" field.
func (_c *JobCreate) SetRepoURL(v string) *JobCreate {
	_c.mutation.SetRepoURL(v)
	return _c
}

// SetGitRef sets the "git_ref" field.
func (_c *JobCreate) SetGitRef(v string) *JobCreate {
	_c.mutation.SetGitRef(v)
	return _c
}

// SetState sets the "state" field.
func (_c *JobCreate) SetState(v job.State) *JobCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *JobCreate) SetNillableState(v *job.State) *JobCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetWorkspaceRef sets the "workspace_ref" field.
func (_c *JobCreate) SetWorkspaceRef(v string) *JobCreate {
	_c.mutation.SetWorkspaceRef(v)
	return _c
}

// SetSnapshotKey sets the "snapshot_key" field.
func (_c *JobCreate) SetSnapshotKey(v string) *JobCreate {
	_c.mutation.SetSnapshotKey(v)
	return _c
}

// SetNillableSnapshotKey sets the "snapshot_key" field if the given value is not nil.
func (_c *JobCreate) SetNillableSnapshotKey(v *string) *JobCreate {
	if v != nil {
		_c.SetSnapshotKey(*v)
	}
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *JobCreate) SetTaskDescription(v string) *JobCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_c *JobCreate) SetNillableTaskDescription(v *string) *JobCreate {
	if v != nil {
		_c.SetTaskDescription(*v)
	}
	return _c
}

// SetFailingTest sets the "failing_test" field.
func (_c *JobCreate) SetFailingTest(v string) *JobCreate {
	_c.mutation.SetFailingTest(v)
	return _c
}

// SetNillableFailingTest sets the "failing_test" field if the given value is not nil.
func (_c *JobCreate) SetNillableFailingTest(v *string) *JobCreate {
	if v != nil {
		_c.SetFailingTest(*v)
	}
	return _c
}

// SetConsecutiveTestFailures sets the "consecutive_test_failures" field.
func (_c *JobCreate) SetConsecutiveTestFailures(v int) *JobCreate {
	_c.mutation.SetConsecutiveTestFailures(v)
	return _c
}

// SetNillableConsecutiveTestFailures sets the "consecutive_test_failures" field if the given value is not nil.
func (_c *JobCreate) SetNillableConsecutiveTestFailures(v *int) *JobCreate {
	if v != nil {
		_c.SetConsecutiveTestFailures(*v)
	}
	return _c
}

// SetIterationCount sets the "iteration_count" field.
func (_c *JobCreate) SetIterationCount(v int) *JobCreate {
	_c.mutation.SetIterationCount(v)
	return _c
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_c *JobCreate) SetNillableIterationCount(v *int) *JobCreate {
	if v != nil {
		_c.SetIterationCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_c *JobCreate) AddStepIDs(ids ...string) *JobCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the Step entity.
func (_c *JobCreate) AddSteps(v ...*Step) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := job.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.ConsecutiveTestFailures(); !ok {
		v := job.DefaultConsecutiveTestFailures
		_c.mutation.SetConsecutiveTestFailures(v)
	}
	if _, ok := _c.mutation.IterationCount(); !ok {
		v := job.DefaultIterationCount
		_c.mutation.SetIterationCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.RepoURL(); !ok {
		return &ValidationError{Name: "repo_url", err: errors.New(`ent: missing required field "Job.repo_url"`)}
	}
	if _, ok := _c.mutation.GitRef(); !ok {
		return &ValidationError{Name: "git_ref", err: errors.New(`ent: missing required field "Job.git_ref"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Job.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkspaceRef(); !ok {
		return &ValidationError{Name: "workspace_ref", err: errors.New(`ent: missing required field "Job.workspace_ref"`)}
	}
	if _, ok := _c.mutation.ConsecutiveTestFailures(); !ok {
		return &ValidationError{Name: "consecutive_test_failures", err: errors.New(`ent: missing required field "Job.consecutive_test_failures"`)}
	}
	if _, ok := _c.mutation.IterationCount(); !ok {
		return &ValidationError{Name: "iteration_count", err: errors.New(`ent: missing required field "Job.iteration_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RepoURL(); ok {
		_spec.SetField(job.FieldRepoURL, field.TypeString, value)
		_node.RepoURL = value
	}
	if value, ok := _c.mutation.GitRef(); ok {
		_spec.SetField(job.FieldGitRef, field.TypeString, value)
		_node.GitRef = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.WorkspaceRef(); ok {
		_spec.SetField(job.FieldWorkspaceRef, field.TypeString, value)
		_node.WorkspaceRef = value
	}
	if value, ok := _c.mutation.SnapshotKey(); ok {
		_spec.SetField(job.FieldSnapshotKey, field.TypeString, value)
		_node.SnapshotKey = &value
	}
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(job.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = &value
	}
	if value, ok := _c.mutation.FailingTest(); ok {
		_spec.SetField(job.FieldFailingTest, field.TypeString, value)
		_node.FailingTest = &value
	}
	if value, ok := _c.mutation.ConsecutiveTestFailures(); ok {
		_spec.SetField(job.FieldConsecutiveTestFailures, field.TypeInt, value)
		_node.ConsecutiveTestFailures = value
	}
	if value, ok := _c.mutation.IterationCount(); ok {
		_spec.SetField(job.FieldIterationCount, field.TypeInt, value)
		_node.IterationCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
