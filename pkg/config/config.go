// Package config holds the configuration builders for the client and worker
// wrappers. The structs here are pure data: they validate themselves and
// translate into the underlying SDK's option types, contributing no behavior
// of their own.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

var validate = validator.New()

// Default connection values used when a field is left zero.
const (
	DefaultHostPort  = "localhost:7233"
	DefaultNamespace = "default"
)

// ClientConfig describes how to reach the Temporal service.
type ClientConfig struct {
	// HostPort is the frontend address of the Temporal service.
	HostPort string `validate:"required,hostname_port"`

	// Namespace scopes all workflow executions started through the client.
	Namespace string `validate:"required"`

	// Identity overrides the SDK's process-derived worker identity.
	// Optional; leave empty to use the SDK default.
	Identity string
}

// DefaultClientConfig returns a ClientConfig pointing at a local Temporal
// service in the default namespace.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		HostPort:  DefaultHostPort,
		Namespace: DefaultNamespace,
	}
}

// Validate checks the configuration against its declared constraints.
func (c ClientConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}
	return nil
}

// ClientOptions translates the config into SDK client options.
func (c ClientConfig) ClientOptions() client.Options {
	return client.Options{
		HostPort:  c.HostPort,
		Namespace: c.Namespace,
		Identity:  c.Identity,
	}
}

// WorkerConfig describes a single worker polling one task queue.
type WorkerConfig struct {
	// TaskQueue is the queue this worker polls for workflow and activity
	// tasks.
	TaskQueue string `validate:"required"`

	// MaxConcurrentActivities caps concurrently executing activity tasks.
	// Zero means the SDK default.
	MaxConcurrentActivities int `validate:"gte=0"`

	// MaxConcurrentWorkflowTasks caps concurrently executing workflow tasks.
	// Zero means the SDK default.
	MaxConcurrentWorkflowTasks int `validate:"gte=0"`

	// StopTimeout bounds how long a graceful shutdown waits for in-flight
	// activities before giving up.
	StopTimeout time.Duration `validate:"gte=0"`
}

// DefaultWorkerConfig returns a WorkerConfig for the given task queue with a
// short graceful-stop window.
func DefaultWorkerConfig(taskQueue string) WorkerConfig {
	return WorkerConfig{
		TaskQueue:   taskQueue,
		StopTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration against its declared constraints.
func (w WorkerConfig) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid worker config: %w", err)
	}
	return nil
}

// WorkerOptions translates the config into SDK worker options.
func (w WorkerConfig) WorkerOptions() worker.Options {
	return worker.Options{
		MaxConcurrentActivityExecutionSize:     w.MaxConcurrentActivities,
		MaxConcurrentWorkflowTaskExecutionSize: w.MaxConcurrentWorkflowTasks,
		WorkerStopTimeout:                      w.StopTimeout,
	}
}
