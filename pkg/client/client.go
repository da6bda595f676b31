// Package client wraps the Temporal SDK client with typed, generic helpers
// for starting, signalling, and querying workflows. All durability, retry,
// and history semantics belong to the Temporal service; this package only
// translates between typed call sites and the SDK's untyped surface.
package client

import (
	"context"
	"fmt"

	sdkclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/log"

	"github.com/ahrav/go-temporalfx/pkg/config"
)

// Client is a typed facade over a Temporal SDK client.
type Client struct {
	sdk       sdkclient.Client
	namespace string
}

// Option adjusts the SDK options before dialing.
type Option func(*sdkclient.Options)

// WithLogger routes the SDK client's internal logging through l.
func WithLogger(l log.Logger) Option {
	return func(o *sdkclient.Options) { o.Logger = l }
}

// Dial validates cfg and connects to the Temporal service.
func Dial(cfg config.ClientConfig, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sdkOpts := cfg.ClientOptions()
	for _, opt := range opts {
		opt(&sdkOpts)
	}

	c, err := sdkclient.Dial(sdkOpts)
	if err != nil {
		return nil, fmt.Errorf("dial temporal at %s: %w", cfg.HostPort, err)
	}
	return &Client{sdk: c, namespace: cfg.Namespace}, nil
}

// NewFromSDK wraps an already-connected SDK client. Useful in tests and when
// the caller manages the connection lifecycle itself.
func NewFromSDK(c sdkclient.Client, namespace string) *Client {
	return &Client{sdk: c, namespace: namespace}
}

// SDK exposes the underlying client for operations this facade does not cover.
func (c *Client) SDK() sdkclient.Client { return c.sdk }

// Namespace returns the namespace the client was dialed against.
func (c *Client) Namespace() string { return c.namespace }

// Close releases the underlying connection.
func (c *Client) Close() { c.sdk.Close() }

// Signal delivers a signal to a running workflow execution.
func (c *Client) Signal(ctx context.Context, workflowID, runID, name string, arg any) error {
	if err := c.sdk.SignalWorkflow(ctx, workflowID, runID, name, arg); err != nil {
		return fmt.Errorf("signal %q to workflow %s: %w", name, workflowID, err)
	}
	return nil
}

// Cancel requests cancellation of a running workflow execution.
func (c *Client) Cancel(ctx context.Context, workflowID, runID string) error {
	if err := c.sdk.CancelWorkflow(ctx, workflowID, runID); err != nil {
		return fmt.Errorf("cancel workflow %s: %w", workflowID, err)
	}
	return nil
}

// Run is a typed handle to a workflow execution.
type Run[A any] struct {
	run sdkclient.WorkflowRun
}

// ID returns the workflow ID of the execution.
func (r *Run[A]) ID() string { return r.run.GetID() }

// RunID returns the run ID of the execution.
func (r *Run[A]) RunID() string { return r.run.GetRunID() }

// Get blocks until the workflow completes and decodes its result into an A.
func (r *Run[A]) Get(ctx context.Context) (A, error) {
	var a A
	if err := r.run.Get(ctx, &a); err != nil {
		return a, err
	}
	return a, nil
}

// Execute starts a workflow and returns a typed handle to its result.
func Execute[A any](
	ctx context.Context,
	c *Client,
	opts StartOptions,
	workflow any,
	args ...any,
) (*Run[A], error) {
	run, err := c.sdk.ExecuteWorkflow(ctx, opts.startWorkflowOptions(), workflow, args...)
	if err != nil {
		return nil, fmt.Errorf("start workflow on queue %q: %w", opts.TaskQueue, err)
	}
	return &Run[A]{run: run}, nil
}

// Attach returns a typed handle to an existing workflow execution.
func Attach[A any](c *Client, workflowID, runID string) *Run[A] {
	return &Run[A]{run: c.sdk.GetWorkflow(context.Background(), workflowID, runID)}
}

// Query issues a synchronous query against a workflow execution and decodes
// the answer into an A.
func Query[A any](
	ctx context.Context,
	c *Client,
	workflowID, runID, queryType string,
	args ...any,
) (A, error) {
	var a A
	val, err := c.sdk.QueryWorkflow(ctx, workflowID, runID, queryType, args...)
	if err != nil {
		return a, fmt.Errorf("query %q on workflow %s: %w", queryType, workflowID, err)
	}
	if err := val.Get(&a); err != nil {
		return a, fmt.Errorf("decode query %q result: %w", queryType, err)
	}
	return a, nil
}
