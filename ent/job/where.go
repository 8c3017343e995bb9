// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codepilot-ai/codepilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// RepoURL applies equality check predicate on the "repo_url" field. It's identical to RepoURLEQ.
func RepoURL(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRepoURL, v))
}

// GitRef applies equality check predicate on the "git_ref" field. It's identical to GitRefEQ.
func GitRef(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldGitRef, v))
}

// WorkspaceRef applies equality check predicate on the "workspace_ref" field. It's identical to WorkspaceRefEQ.
func WorkspaceRef(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkspaceRef, v))
}

// SnapshotKey applies equality check predicate on the "snapshot_key" field. It's identical to SnapshotKeyEQ.
func SnapshotKey(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSnapshotKey, v))
}

// TaskDescription applies equality check predicate on the "task_description" field. It's identical to TaskDescriptionEQ.
func TaskDescription(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTaskDescription, v))
}

// FailingTest applies equality check predicate on the "failing_test" field. It's identical to FailingTestEQ.
func FailingTest(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFailingTest, v))
}

// ConsecutiveTestFailures applies equality check predicate on the "consecutive_test_failures" field. It's identical to ConsecutiveTestFailuresEQ.
func ConsecutiveTestFailures(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldConsecutiveTestFailures, v))
}

// IterationCount applies equality check predicate on the "iteration_count" field. It's identical to IterationCountEQ.
func IterationCount(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldIterationCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// RepoURLEQ applies the EQ predicate on the "repo_url" field.
func RepoURLEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRepoURL, v))
}

// RepoURLNEQ applies the NEQ predicate on the "repo_url" field.
func RepoURLNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRepoURL, v))
}

// RepoURLIn applies the In predicate on the "repo_url" field.
func RepoURLIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRepoURL, vs...))
}

// RepoURLNotIn applies the NotIn predicate on the "repo_url" field.
func RepoURLNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRepoURL, vs...))
}

// RepoURLGT applies the GT predicate on the "repo_url" field.
func RepoURLGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRepoURL, v))
}

// RepoURLGTE applies the GTE predicate on the "repo_url" field.
func RepoURLGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRepoURL, v))
}

// RepoURLLT applies the LT predicate on the "repo_url" field.
func RepoURLLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRepoURL, v))
}

// RepoURLLTE applies the LTE predicate on the "repo_url" field.
func RepoURLLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRepoURL, v))
}

// RepoURLContains applies the Contains predicate on the "repo_url" field.
func RepoURLContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldRepoURL, v))
}

// RepoURLHasPrefix applies the HasPrefix predicate on the "repo_url" field.
func RepoURLHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldRepoURL, v))
}

// RepoURLHasSuffix applies the HasSuffix predicate on the "repo_url" field.
func RepoURLHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldRepoURL, v))
}

// RepoURLEqualFold applies the EqualFold predicate on the "repo_url" field.
func RepoURLEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldRepoURL, v))
}

// RepoURLContainsFold applies the ContainsFold predicate on the "repo_url" field.
func RepoURLContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldRepoURL, v))
}

// GitRefEQ applies the EQ predicate on the "git_ref" field.
func GitRefEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldGitRef, v))
}

// GitRefNEQ applies the NEQ predicate on the "git_ref" field.
func GitRefNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldGitRef, v))
}

// GitRefIn applies the In predicate on the "git_ref" field.
func GitRefIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldGitRef, vs...))
}

// GitRefNotIn applies the NotIn predicate on the "git_ref" field.
func GitRefNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldGitRef, vs...))
}

// GitRefGT applies the GT predicate on the "git_ref" field.
func GitRefGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldGitRef, v))
}

// GitRefGTE applies the GTE predicate on the "git_ref" field.
func GitRefGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldGitRef, v))
}

// GitRefLT applies the LT predicate on the "git_ref" field.
func GitRefLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldGitRef, v))
}

// GitRefLTE applies the LTE predicate on the "git_ref" field.
func GitRefLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldGitRef, v))
}

// GitRefContains applies the Contains predicate on the "git_ref" field.
func GitRefContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldGitRef, v))
}

// GitRefHasPrefix applies the HasPrefix predicate on the "git_ref" field.
func GitRefHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldGitRef, v))
}

// GitRefHasSuffix applies the HasSuffix predicate on the "git_ref" field.
func GitRefHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldGitRef, v))
}

// GitRefEqualFold applies the EqualFold predicate on the "git_ref" field.
func GitRefEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldGitRef, v))
}

// GitRefContainsFold applies the ContainsFold predicate on the "git_ref" field.
func GitRefContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldGitRef, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldState, vs...))
}

// WorkspaceRefEQ applies the EQ predicate on the "workspace_ref" field.
func WorkspaceRefEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkspaceRef, v))
}

// WorkspaceRefNEQ applies the NEQ predicate on the "workspace_ref" field.
func WorkspaceRefNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkspaceRef, v))
}

// WorkspaceRefIn applies the In predicate on the "workspace_ref" field.
func WorkspaceRefIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkspaceRef, vs...))
}

// WorkspaceRefNotIn applies the NotIn predicate on the "workspace_ref" field.
func WorkspaceRefNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkspaceRef, vs...))
}

// WorkspaceRefGT applies the GT predicate on the "workspace_ref" field.
func WorkspaceRefGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkspaceRef, v))
}

// WorkspaceRefGTE applies the GTE predicate on the "workspace_ref" field.
func WorkspaceRefGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkspaceRef, v))
}

// WorkspaceRefLT applies the LT predicate on the "workspace_ref" field.
func WorkspaceRefLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkspaceRef, v))
}

// WorkspaceRefLTE applies the LTE predicate on the "workspace_ref" field.
func WorkspaceRefLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkspaceRef, v))
}

// WorkspaceRefContains applies the Contains predicate on the "workspace_ref" field.
func WorkspaceRefContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkspaceRef, v))
}

// WorkspaceRefHasPrefix applies the HasPrefix predicate on the "workspace_ref" field.
func WorkspaceRefHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkspaceRef, v))
}

// WorkspaceRefHasSuffix applies the HasSuffix predicate on the "workspace_ref" field.
func WorkspaceRefHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkspaceRef, v))
}

// WorkspaceRefEqualFold applies the EqualFold predicate on the "workspace_ref" field.
func WorkspaceRefEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkspaceRef, v))
}

// WorkspaceRefContainsFold applies the ContainsFold predicate on the "workspace_ref" field.
func WorkspaceRefContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkspaceRef, v))
}

// SnapshotKeyEQ applies the EQ predicate on the "snapshot_key" field.
func SnapshotKeyEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSnapshotKey, v))
}

// SnapshotKeyNEQ applies the NEQ predicate on the "snapshot_key" field.
func SnapshotKeyNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSnapshotKey, v))
}

// SnapshotKeyIn applies the In predicate on the "snapshot_key" field.
func SnapshotKeyIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSnapshotKey, vs...))
}

// SnapshotKeyNotIn applies the NotIn predicate on the "snapshot_key" field.
func SnapshotKeyNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSnapshotKey, vs...))
}

// SnapshotKeyGT applies the GT predicate on the "snapshot_key" field.
func SnapshotKeyGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSnapshotKey, v))
}

// SnapshotKeyGTE applies the GTE predicate on the "snapshot_key" field.
func SnapshotKeyGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSnapshotKey, v))
}

// SnapshotKeyLT applies the LT predicate on the "snapshot_key" field.
func SnapshotKeyLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSnapshotKey, v))
}

// SnapshotKeyLTE applies the LTE predicate on the "snapshot_key" field.
func SnapshotKeyLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSnapshotKey, v))
}

// SnapshotKeyContains applies the Contains predicate on the "snapshot_key" field.
func SnapshotKeyContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSnapshotKey, v))
}

// SnapshotKeyHasPrefix applies the HasPrefix predicate on the "snapshot_key" field.
func SnapshotKeyHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSnapshotKey, v))
}

// SnapshotKeyHasSuffix applies the HasSuffix predicate on the "snapshot_key" field.
func SnapshotKeyHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSnapshotKey, v))
}

// SnapshotKeyIsNil applies the IsNil predicate on the "snapshot_key" field.
func SnapshotKeyIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSnapshotKey))
}

// SnapshotKeyNotNil applies the NotNil predicate on the "snapshot_key" field.
func SnapshotKeyNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSnapshotKey))
}

// SnapshotKeyEqualFold applies the EqualFold predicate on the "snapshot_key" field.
func SnapshotKeyEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSnapshotKey, v))
}

// SnapshotKeyContainsFold applies the ContainsFold predicate on the "snapshot_key" field.
func SnapshotKeyContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSnapshotKey, v))
}

// TaskDescriptionEQ applies the EQ predicate on the "task_description" field.
func TaskDescriptionEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskDescriptionNEQ applies the NEQ predicate on the "task_description" field.
func TaskDescriptionNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTaskDescription, v))
}

// TaskDescriptionIn applies the In predicate on the "task_description" field.
func TaskDescriptionIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTaskDescription, vs...))
}

// TaskDescriptionNotIn applies the NotIn predicate on the "task_description" field.
func TaskDescriptionNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTaskDescription, vs...))
}

// TaskDescriptionGT applies the GT predicate on the "task_description" field.
func TaskDescriptionGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTaskDescription, v))
}

// TaskDescriptionGTE applies the GTE predicate on the "task_description" field.
func TaskDescriptionGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTaskDescription, v))
}

// TaskDescriptionLT applies the LT predicate on the "task_description" field.
func TaskDescriptionLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTaskDescription, v))
}

// TaskDescriptionLTE applies the LTE predicate on the "task_description" field.
func TaskDescriptionLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTaskDescription, v))
}

// TaskDescriptionContains applies the Contains predicate on the "task_description" field.
func TaskDescriptionContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTaskDescription, v))
}

// TaskDescriptionHasPrefix applies the HasPrefix predicate on the "task_description" field.
func TaskDescriptionHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTaskDescription, v))
}

// TaskDescriptionHasSuffix applies the HasSuffix predicate on the "task_description" field.
func TaskDescriptionHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTaskDescription, v))
}

// TaskDescriptionIsNil applies the IsNil predicate on the "task_description" field.
func TaskDescriptionIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTaskDescription))
}

// TaskDescriptionNotNil applies the NotNil predicate on the "task_description" field.
func TaskDescriptionNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTaskDescription))
}

// TaskDescriptionEqualFold applies the EqualFold predicate on the "task_description" field.
func TaskDescriptionEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTaskDescription, v))
}

// TaskDescriptionContainsFold applies the ContainsFold predicate on the "task_description" field.
func TaskDescriptionContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTaskDescription, v))
}

// FailingTestEQ applies the EQ predicate on the "failing_test" field.
func FailingTestEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFailingTest, v))
}

// FailingTestNEQ applies the NEQ predicate on the "failing_test" field.
func FailingTestNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFailingTest, v))
}

// FailingTestIn applies the In predicate on the "failing_test" field.
func FailingTestIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFailingTest, vs...))
}

// FailingTestNotIn applies the NotIn predicate on the "failing_test" field.
func FailingTestNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFailingTest, vs...))
}

// FailingTestGT applies the GT predicate on the "failing_test" field.
func FailingTestGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFailingTest, v))
}

// FailingTestGTE applies the GTE predicate on the "failing_test" field.
func FailingTestGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFailingTest, v))
}

// FailingTestLT applies the LT predicate on the "failing_test" field.
func FailingTestLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFailingTest, v))
}

// FailingTestLTE applies the LTE predicate on the "failing_test" field.
func FailingTestLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFailingTest, v))
}

// FailingTestContains applies the Contains predicate on the "failing_test" field.
func FailingTestContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldFailingTest, v))
}

// FailingTestHasPrefix applies the HasPrefix predicate on the "failing_test" field.
func FailingTestHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldFailingTest, v))
}

// FailingTestHasSuffix applies the HasSuffix predicate on the "failing_test" field.
func FailingTestHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldFailingTest, v))
}

// FailingTestIsNil applies the IsNil predicate on the "failing_test" field.
func FailingTestIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldFailingTest))
}

// FailingTestNotNil applies the NotNil predicate on the "failing_test" field.
func FailingTestNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldFailingTest))
}

// FailingTestEqualFold applies the EqualFold predicate on the "failing_test" field.
func FailingTestEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldFailingTest, v))
}

// FailingTestContainsFold applies the ContainsFold predicate on the "failing_test" field.
func FailingTestContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldFailingTest, v))
}

// ConsecutiveTestFailuresEQ applies the EQ predicate on the "consecutive_test_failures" field.
func ConsecutiveTestFailuresEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldConsecutiveTestFailures, v))
}

// ConsecutiveTestFailuresNEQ applies the NEQ predicate on the "consecutive_test_failures" field.
func ConsecutiveTestFailuresNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldConsecutiveTestFailures, v))
}

// ConsecutiveTestFailuresIn applies the In predicate on the "consecutive_test_failures" field.
func ConsecutiveTestFailuresIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldConsecutiveTestFailures, vs...))
}

// ConsecutiveTestFailuresNotIn applies the NotIn predicate on the "consecutive_test_failures" field.
func ConsecutiveTestFailuresNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldConsecutiveTestFailures, vs...))
}

// ConsecutiveTestFailuresGT applies the GT predicate on the "consecutive_test_failures" field.
func ConsecutiveTestFailuresGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldConsecutiveTestFailures, v))
}

// ConsecutiveTestFailuresGTE applies the GTE predicate on the "consecutive_test_failures" field.
func ConsecutiveTestFailuresGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldConsecutiveTestFailures, v))
}

// ConsecutiveTestFailuresLT applies the LT predicate on the "consecutive_test_failures" field.
func ConsecutiveTestFailuresLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldConsecutiveTestFailures, v))
}

// ConsecutiveTestFailuresLTE applies the LTE predicate on the "consecutive_test_failures" field.
func ConsecutiveTestFailuresLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldConsecutiveTestFailures, v))
}

// IterationCountEQ applies the EQ predicate on the "iteration_count" field.
func IterationCountEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldIterationCount, v))
}

// IterationCountNEQ applies the NEQ predicate on the "iteration_count" field.
func IterationCountNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldIterationCount, v))
}

// IterationCountIn applies the In predicate on the "iteration_count" field.
func IterationCountIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldIterationCount, vs...))
}

// IterationCountNotIn applies the NotIn predicate on the "iteration_count" field.
func IterationCountNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldIterationCount, vs...))
}

// IterationCountGT applies the GT predicate on the "iteration_count" field.
func IterationCountGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldIterationCount, v))
}

// IterationCountGTE applies the GTE predicate on the "iteration_count" field.
func IterationCountGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldIterationCount, v))
}

// IterationCountLT applies the LT predicate on the "iteration_count" field.
func IterationCountLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldIterationCount, v))
}

// IterationCountLTE applies the LTE predicate on the "iteration_count" field.
func IterationCountLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldIterationCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.Step) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
