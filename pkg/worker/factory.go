// Package worker provides a factory over Temporal SDK workers: creation from
// validated configuration, registration of workflows and activities, and a
// start/shutdown lifecycle covering every worker the factory owns. Task
// polling, sticky queues, and rate limiting all remain the SDK's concern.
package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	sdkclient "go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-temporalfx/pkg/client"
	"github.com/ahrav/go-temporalfx/pkg/config"
	"github.com/ahrav/go-temporalfx/pkg/events"
)

// Registry is the registration surface a worker exposes. Registration is not
// thread-safe and must happen before the worker starts.
type Registry interface {
	RegisterWorkflow(w any)
	RegisterActivity(a any)
}

// Worker is the subset of the SDK worker the factory manages.
type Worker interface {
	Registry
	Start() error
	Run(interruptCh <-chan any) error
	Stop()
}

// newSDKWorker creates the underlying SDK worker. Swapped out in tests.
var newSDKWorker = func(c sdkclient.Client, taskQueue string, opts sdkworker.Options) Worker {
	return sdkworker.New(c, taskQueue, opts)
}

type managed struct {
	worker    Worker
	taskQueue string
	started   bool
}

// Factory creates and owns workers bound to a single client connection.
type Factory struct {
	client *client.Client
	sink   events.Sink
	log    zerolog.Logger

	mu      sync.Mutex
	workers []*managed
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithEventSink routes worker lifecycle events to s.
func WithEventSink(s events.Sink) FactoryOption {
	return func(f *Factory) { f.sink = s }
}

// WithLogger sets the factory's logger. The default discards everything.
func WithLogger(zl zerolog.Logger) FactoryOption {
	return func(f *Factory) { f.log = zl }
}

// NewFactory creates a Factory over c.
func NewFactory(c *client.Client, opts ...FactoryOption) *Factory {
	f := &Factory{
		client: c,
		sink:   events.NoopSink{},
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewWorker validates cfg, creates a worker polling cfg.TaskQueue, and hands
// it to register for workflow/activity registration. The worker is owned by
// the factory and participates in Start/Shutdown.
func (f *Factory) NewWorker(cfg config.WorkerConfig, register func(Registry)) (Worker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := newSDKWorker(f.client.SDK(), cfg.TaskQueue, cfg.WorkerOptions())
	if register != nil {
		register(w)
	}

	f.mu.Lock()
	f.workers = append(f.workers, &managed{worker: w, taskQueue: cfg.TaskQueue})
	f.mu.Unlock()

	f.log.Debug().Str("task_queue", cfg.TaskQueue).Msg("worker created")
	return w, nil
}

// Start starts every worker the factory owns. On the first failure it stops
// the workers already started and returns the error.
func (f *Factory) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, m := range f.workers {
		if m.started {
			continue
		}
		if err := m.worker.Start(); err != nil {
			f.stopAllLocked(true)
			return fmt.Errorf("start worker on queue %q: %w", m.taskQueue, err)
		}
		m.started = true
		f.emit(events.TypeWorkerStarted, m.taskQueue)
		f.log.Info().Str("task_queue", m.taskQueue).Msg("worker started")
	}
	return nil
}

// Shutdown stops every started worker and waits for each stop to complete.
// The per-worker grace period is the StopTimeout baked into its config.
func (f *Factory) Shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopAllLocked(true)
}

// ShutdownNow stops every started worker on detached goroutines and returns
// without waiting for the stops to complete. Each worker's stopped event is
// emitted once its stop actually finishes.
func (f *Factory) ShutdownNow() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopAllLocked(false)
}

func (f *Factory) stopAllLocked(wait bool) {
	for _, m := range f.workers {
		if !m.started {
			continue
		}
		m.started = false
		if wait {
			m.worker.Stop()
			f.emit(events.TypeWorkerStopped, m.taskQueue)
			f.log.Info().Str("task_queue", m.taskQueue).Msg("worker stopped")
			continue
		}
		go func(m *managed) {
			m.worker.Stop()
			f.emit(events.TypeWorkerStopped, m.taskQueue)
		}(m)
	}
}

// emit appends a lifecycle event, best effort. Sink failures are logged and
// never propagate to the lifecycle operation.
func (f *Factory) emit(eventType, taskQueue string) {
	env := events.NewEnvelope(eventType, "worker-factory", taskQueue)
	if err := f.sink.Append(context.Background(), env); err != nil {
		f.log.Warn().Err(err).Str("event_type", eventType).Msg("lifecycle event not recorded")
	}
}
