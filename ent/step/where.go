// Code generated by ent, DO NOT EDIT.

package step

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codepilot-ai/codepilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldJobID, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAttempt, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWorkerID, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldHeartbeatAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldFinishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// ResultJSON applies equality check predicate on the "result_json" field. It's identical to ResultJSONEQ.
func ResultJSON(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldResultJSON, v))
}

// ConversationHistory applies equality check predicate on the "conversation_history" field. It's identical to ConversationHistoryEQ.
func ConversationHistory(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldConversationHistory, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldJobID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldRole, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldState, vs...))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldAttempt, v))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldWorkerID, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldHeartbeatAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldFinishedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCreatedAt, v))
}

// ResultJSONEQ applies the EQ predicate on the "result_json" field.
func ResultJSONEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldResultJSON, v))
}

// ResultJSONNEQ applies the NEQ predicate on the "result_json" field.
func ResultJSONNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldResultJSON, v))
}

// ResultJSONIn applies the In predicate on the "result_json" field.
func ResultJSONIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldResultJSON, vs...))
}

// ResultJSONNotIn applies the NotIn predicate on the "result_json" field.
func ResultJSONNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldResultJSON, vs...))
}

// ResultJSONGT applies the GT predicate on the "result_json" field.
func ResultJSONGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldResultJSON, v))
}

// ResultJSONGTE applies the GTE predicate on the "result_json" field.
func ResultJSONGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldResultJSON, v))
}

// ResultJSONLT applies the LT predicate on the "result_json" field.
func ResultJSONLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldResultJSON, v))
}

// ResultJSONLTE applies the LTE predicate on the "result_json" field.
func ResultJSONLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldResultJSON, v))
}

// ResultJSONContains applies the Contains predicate on the "result_json" field.
func ResultJSONContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldResultJSON, v))
}

// ResultJSONHasPrefix applies the HasPrefix predicate on the "result_json" field.
func ResultJSONHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldResultJSON, v))
}

// ResultJSONHasSuffix applies the HasSuffix predicate on the "result_json" field.
func ResultJSONHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldResultJSON, v))
}

// ResultJSONIsNil applies the IsNil predicate on the "result_json" field.
func ResultJSONIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldResultJSON))
}

// ResultJSONNotNil applies the NotNil predicate on the "result_json" field.
func ResultJSONNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldResultJSON))
}

// ResultJSONEqualFold applies the EqualFold predicate on the "result_json" field.
func ResultJSONEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldResultJSON, v))
}

// ResultJSONContainsFold applies the ContainsFold predicate on the "result_json" field.
func ResultJSONContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldResultJSON, v))
}

// ConversationHistoryEQ applies the EQ predicate on the "conversation_history" field.
func ConversationHistoryEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldConversationHistory, v))
}

// ConversationHistoryNEQ applies the NEQ predicate on the "conversation_history" field.
func ConversationHistoryNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldConversationHistory, v))
}

// ConversationHistoryIn applies the In predicate on the "conversation_history" field.
func ConversationHistoryIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldConversationHistory, vs...))
}

// ConversationHistoryNotIn applies the NotIn predicate on the "conversation_history" field.
func ConversationHistoryNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldConversationHistory, vs...))
}

// ConversationHistoryGT applies the GT predicate on the "conversation_history" field.
func ConversationHistoryGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldConversationHistory, v))
}

// ConversationHistoryGTE applies the GTE predicate on the "conversation_history" field.
func ConversationHistoryGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldConversationHistory, v))
}

// ConversationHistoryLT applies the LT predicate on the "conversation_history" field.
func ConversationHistoryLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldConversationHistory, v))
}

// ConversationHistoryLTE applies the LTE predicate on the "conversation_history" field.
func ConversationHistoryLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldConversationHistory, v))
}

// ConversationHistoryContains applies the Contains predicate on the "conversation_history" field.
func ConversationHistoryContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldConversationHistory, v))
}

// ConversationHistoryHasPrefix applies the HasPrefix predicate on the "conversation_history" field.
func ConversationHistoryHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldConversationHistory, v))
}

// ConversationHistoryHasSuffix applies the HasSuffix predicate on the "conversation_history" field.
func ConversationHistoryHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldConversationHistory, v))
}

// ConversationHistoryIsNil applies the IsNil predicate on the "conversation_history" field.
func ConversationHistoryIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldConversationHistory))
}

// ConversationHistoryNotNil applies the NotNil predicate on the "conversation_history" field.
func ConversationHistoryNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldConversationHistory))
}

// ConversationHistoryEqualFold applies the EqualFold predicate on the "conversation_history" field.
func ConversationHistoryEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldConversationHistory, v))
}

// ConversationHistoryContainsFold applies the ContainsFold predicate on the "conversation_history" field.
func ConversationHistoryContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldConversationHistory, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Step) predicate.Step {
	return predicate.Step(sql.NotPredicates(p))
}
