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

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *StepCreate) SetJobID(v string) *StepCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *StepCreate) SetRole(v step.Role) *StepCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetState sets the "state" field.
func (_c *StepCreate) SetState(v step.State) *StepCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *StepCreate) SetNillableState(v *step.State) *StepCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *StepCreate) SetAttempt(v int) *StepCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *StepCreate) SetNillableAttempt(v *int) *StepCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *StepCreate) SetWorkerID(v string) *StepCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *StepCreate) SetNillableWorkerID(v *string) *StepCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *StepCreate) SetHeartbeatAt(v time.Time) *StepCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableHeartbeatAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepCreate) SetStartedAt(v time.Time) *StepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableStartedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *StepCreate) SetFinishedAt(v time.Time) *StepCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableFinishedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepCreate) SetCreatedAt(v time.Time) *StepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCreatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResultJSON sets the "result_json" field.
func (_c *StepCreate) SetResultJSON(v string) *StepCreate {
	_c.mutation.SetResultJSON(v)
	return _c
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_c *StepCreate) SetNillableResultJSON(v *string) *StepCreate {
	if v != nil {
		_c.SetResultJSON(*v)
	}
	return _c
}

// SetConversationHistory sets the "conversation_history" field.
func (_c *StepCreate) SetConversationHistory(v string) *StepCreate {
	_c.mutation.SetConversationHistory(v)
	return _c
}

// SetNillableConversationHistory sets the "conversation_history" field if the given value is not nil.
func (_c *StepCreate) SetNillableConversationHistory(v *string) *StepCreate {
	if v != nil {
		_c.SetConversationHistory(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepCreate) SetID(v string) *StepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *StepCreate) SetJob(v *Job) *StepCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := step.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := step.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := step.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Step.job_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Step.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := step.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Step.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Step.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Step.attempt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Step.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Step.job"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
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
			return nil, fmt.Errorf("unexpected Step.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(step.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(step.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(step.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(step.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(step.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(step.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResultJSON(); ok {
		_spec.SetField(step.FieldResultJSON, field.TypeString, value)
		_node.ResultJSON = &value
	}
	if value, ok := _c.mutation.ConversationHistory(); ok {
		_spec.SetField(step.FieldConversationHistory, field.TypeString, value)
		_node.ConversationHistory = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.JobTable,
			Columns: []string{step.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
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
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
