package client

import (
	"time"

	"github.com/google/uuid"
	sdkclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
)

// StartOptions configures a single workflow start. It is a pure builder over
// the SDK's start options.
type StartOptions struct {
	// ID is the workflow ID. Left empty, a UUID-based ID is generated so
	// repeated starts do not collide.
	ID string

	// TaskQueue is the queue the workflow's tasks are dispatched to.
	TaskQueue string

	// ExecutionTimeout bounds the whole execution including retries and
	// continue-as-new. Zero means unlimited.
	ExecutionTimeout time.Duration

	// RunTimeout bounds a single workflow run. Zero means unlimited.
	RunTimeout time.Duration

	// RetryPolicy applies to the workflow execution itself, not to its
	// activities. Nil means no workflow-level retries.
	RetryPolicy *temporal.RetryPolicy
}

func (o StartOptions) startWorkflowOptions() sdkclient.StartWorkflowOptions {
	id := o.ID
	if id == "" {
		id = "workflow-" + uuid.NewString()
	}
	return sdkclient.StartWorkflowOptions{
		ID:                       id,
		TaskQueue:                o.TaskQueue,
		WorkflowExecutionTimeout: o.ExecutionTimeout,
		WorkflowRunTimeout:       o.RunTimeout,
		RetryPolicy:              o.RetryPolicy,
	}
}
