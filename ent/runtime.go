// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/schema"
	"github.com/codepilot-ai/codepilot/ent/step"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescConsecutiveTestFailures is the schema descriptor for consecutive_test_failures field.
	jobDescConsecutiveTestFailures := jobFields[8].Descriptor()
	// job.DefaultConsecutiveTestFailures holds the default value on creation for the consecutive_test_failures field.
	job.DefaultConsecutiveTestFailures = jobDescConsecutiveTestFailures.Default.(int)
	// jobDescIterationCount is the schema descriptor for iteration_count field.
	jobDescIterationCount := jobFields[9].Descriptor()
	// job.DefaultIterationCount holds the default value on creation for the iteration_count field.
	job.DefaultIterationCount = jobDescIterationCount.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[10].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[11].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescAttempt is the schema descriptor for attempt field.
	stepDescAttempt := stepFields[4].Descriptor()
	// step.DefaultAttempt holds the default value on creation for the attempt field.
	step.DefaultAttempt = stepDescAttempt.Default.(int)
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[9].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
}
