// Package activity provides helpers for activity implementations built on
// this wrapper: safe context extraction, panic-guarded logging and
// heartbeating that also work outside a real activity context, and an
// adapter that maps effectful computations into Temporal's error model.
package activity

import (
	"context"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
)

// ExecutionContext is the workflow metadata an activity body usually needs,
// extracted once from the Temporal activity context.
type ExecutionContext struct {
	WorkflowID string
	RunID      string
	ActivityID string
	Attempt    int32
}

// GetExecutionContext extracts execution metadata from the activity context.
// Outside a real activity context, where activity.GetInfo panics, it returns
// generated test identifiers so activity bodies stay testable as plain
// functions.
func GetExecutionContext(ctx context.Context) ExecutionContext {
	var ec ExecutionContext

	func() {
		defer func() {
			if recover() != nil {
				ec.WorkflowID = "test-workflow-" + uuid.NewString()[:8]
				ec.RunID = "test-run-" + uuid.NewString()[:8]
				ec.ActivityID = "test-activity"
				ec.Attempt = 1
			}
		}()

		info := activity.GetInfo(ctx)
		ec.WorkflowID = info.WorkflowExecution.ID
		ec.RunID = info.WorkflowExecution.RunID
		ec.ActivityID = info.ActivityID
		ec.Attempt = info.Attempt
	}()

	return ec
}

// SafeLog logs at INFO through the activity logger, and is a no-op outside
// an activity context instead of panicking.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		_ = recover() // not an activity context
	}()
	activity.GetLogger(ctx).Info(msg, keyvals...)
}

// SafeLogError logs at ERROR through the activity logger, and is a no-op
// outside an activity context.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		_ = recover() // not an activity context
	}()
	activity.GetLogger(ctx).Error(msg, keyvals...)
}

// RecordHeartbeat records activity progress and is a no-op outside an
// activity context.
func RecordHeartbeat(ctx context.Context, details ...any) {
	defer func() {
		_ = recover() // not an activity context
	}()
	activity.RecordHeartbeat(ctx, details...)
}
