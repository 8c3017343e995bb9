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
	"github.com/codepilot-ai/codepilot/ent/predicate"
	"github.com/codepilot-ai/codepilot/ent/step"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *StepUpdate) SetRole(v step.Role) *StepUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *StepUpdate) SetNillableRole(v *step.Role) *StepUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *StepUpdate) SetState(v step.State) *StepUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *StepUpdate) SetNillableState(v *step.State) *StepUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *StepUpdate) SetAttempt(v int) *StepUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *StepUpdate) SetNillableAttempt(v *int) *StepUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *StepUpdate) AddAttempt(v int) *StepUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *StepUpdate) SetWorkerID(v string) *StepUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *StepUpdate) SetNillableWorkerID(v *string) *StepUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *StepUpdate) ClearWorkerID() *StepUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *StepUpdate) SetHeartbeatAt(v time.Time) *StepUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableHeartbeatAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *StepUpdate) ClearHeartbeatAt() *StepUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdate) SetStartedAt(v time.Time) *StepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStartedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdate) ClearStartedAt() *StepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *StepUpdate) SetFinishedAt(v time.Time) *StepUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableFinishedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *StepUpdate) ClearFinishedAt() *StepUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *StepUpdate) SetResultJSON(v string) *StepUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_u *StepUpdate) SetNillableResultJSON(v *string) *StepUpdate {
	if v != nil {
		_u.SetResultJSON(*v)
	}
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *StepUpdate) ClearResultJSON() *StepUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetConversationHistory sets the "conversation_history" field.
func (_u *StepUpdate) SetConversationHistory(v string) *StepUpdate {
	_u.mutation.SetConversationHistory(v)
	return _u
}

// SetNillableConversationHistory sets the "conversation_history" field if the given value is not nil.
func (_u *StepUpdate) SetNillableConversationHistory(v *string) *StepUpdate {
	if v != nil {
		_u.SetConversationHistory(*v)
	}
	return _u
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (_u *StepUpdate) ClearConversationHistory() *StepUpdate {
	_u.mutation.ClearConversationHistory()
	return _u
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := step.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Step.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.job"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(step.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(step.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(step.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(step.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(step.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(step.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(step.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(step.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(step.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(step.FieldResultJSON, field.TypeString, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(step.FieldResultJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ConversationHistory(); ok {
		_spec.SetField(step.FieldConversationHistory, field.TypeString, value)
	}
	if _u.mutation.ConversationHistoryCleared() {
		_spec.ClearField(step.FieldConversationHistory, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetRole sets the "role" field.
func (_u *StepUpdateOne) SetRole(v step.Role) *StepUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableRole(v *step.Role) *StepUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *StepUpdateOne) SetState(v step.State) *StepUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableState(v *step.State) *StepUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *StepUpdateOne) SetAttempt(v int) *StepUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableAttempt(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *StepUpdateOne) AddAttempt(v int) *StepUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *StepUpdateOne) SetWorkerID(v string) *StepUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableWorkerID(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *StepUpdateOne) ClearWorkerID() *StepUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *StepUpdateOne) SetHeartbeatAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableHeartbeatAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *StepUpdateOne) ClearHeartbeatAt() *StepUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdateOne) SetStartedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStartedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdateOne) ClearStartedAt() *StepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *StepUpdateOne) SetFinishedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableFinishedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *StepUpdateOne) ClearFinishedAt() *StepUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *StepUpdateOne) SetResultJSON(v string) *StepUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableResultJSON(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetResultJSON(*v)
	}
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *StepUpdateOne) ClearResultJSON() *StepUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetConversationHistory sets the "conversation_history" field.
func (_u *StepUpdateOne) SetConversationHistory(v string) *StepUpdateOne {
	_u.mutation.SetConversationHistory(v)
	return _u
}

// SetNillableConversationHistory sets the "conversation_history" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableConversationHistory(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetConversationHistory(*v)
	}
	return _u
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (_u *StepUpdateOne) ClearConversationHistory() *StepUpdateOne {
	_u.mutation.ClearConversationHistory()
	return _u
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := step.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Step.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.job"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(step.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(step.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(step.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(step.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(step.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(step.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(step.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(step.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(step.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(step.FieldResultJSON, field.TypeString, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(step.FieldResultJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ConversationHistory(); ok {
		_spec.SetField(step.FieldConversationHistory, field.TypeString, value)
	}
	if _u.mutation.ConversationHistoryCleared() {
		_spec.ClearField(step.FieldConversationHistory, field.TypeString)
	}
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
