// Package sample contains a small greeting workflow used by the demo binary
// and the integration tests. It shows the intended shape of code built on
// this wrapper: workflows stay deterministic and delegate to activities,
// activities are written as effectful computations with a declared failure
// domain and adapted at the boundary.
package sample

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// TaskQueue is the queue the sample worker polls.
const TaskQueue = "temporalfx-sample"

// GreetingRequest is the workflow input.
type GreetingRequest struct {
	Name string `json:"name"`
}

// GreetingResult is the workflow output.
type GreetingResult struct {
	Message string `json:"message"`
}

// GreetingWorkflow validates the request and composes a greeting through a
// single activity. All workflow code uses workflow-safe APIs only.
func GreetingWorkflow(ctx workflow.Context, req GreetingRequest) (*GreetingResult, error) {
	// Version gate enables safe evolution of the workflow definition.
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "greeting.v", workflow.DefaultVersion, currentVersion)

	if req.Name == "" {
		return nil, temporal.NewNonRetryableApplicationError(
			"greeting request has no name",
			"Validation",
			nil,
		)
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var res GreetingResult
	var acts *Activities
	if err := workflow.ExecuteActivity(ctx, acts.ComposeGreeting, req).Get(ctx, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
