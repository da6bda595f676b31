package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkclient "go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-temporalfx/pkg/client"
	"github.com/ahrav/go-temporalfx/pkg/config"
	"github.com/ahrav/go-temporalfx/pkg/events"
)

type fakeWorker struct {
	mu         sync.Mutex
	workflows  []any
	activities []any
	started    bool
	stopped    bool
	startErr   error
}

func (w *fakeWorker) RegisterWorkflow(wf any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.workflows = append(w.workflows, wf)
}

func (w *fakeWorker) RegisterActivity(a any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.activities = append(w.activities, a)
}

func (w *fakeWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.startErr != nil {
		return w.startErr
	}
	w.started = true
	return nil
}

func (w *fakeWorker) Run(<-chan any) error { return w.Start() }

func (w *fakeWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
}

// withFakeWorkers swaps the SDK worker constructor for the test's duration
// and returns the fakes created through it, keyed by task queue.
func withFakeWorkers(t *testing.T, startErrs map[string]error) map[string]*fakeWorker {
	t.Helper()

	created := make(map[string]*fakeWorker)
	var mu sync.Mutex
	orig := newSDKWorker
	newSDKWorker = func(_ sdkclient.Client, taskQueue string, _ sdkworker.Options) Worker {
		w := &fakeWorker{startErr: startErrs[taskQueue]}
		mu.Lock()
		created[taskQueue] = w
		mu.Unlock()
		return w
	}
	t.Cleanup(func() { newSDKWorker = orig })
	return created
}

type recordingSink struct {
	mu        sync.Mutex
	envelopes []events.Envelope
}

func (s *recordingSink) Append(_ context.Context, e events.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envelopes = append(s.envelopes, e)
	return nil
}

func (s *recordingSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.envelopes))
	for i, e := range s.envelopes {
		out[i] = e.Type
	}
	return out
}

// signalingSink delivers every envelope to a channel so tests can block on
// emissions that happen on detached goroutines.
type signalingSink struct{ ch chan events.Envelope }

func (s signalingSink) Append(_ context.Context, e events.Envelope) error {
	s.ch <- e
	return nil
}

func testFactory(opts ...FactoryOption) *Factory {
	return NewFactory(client.NewFromSDK(nil, "default"), opts...)
}

func sampleWorkflow() error { return nil }
func sampleActivity() error { return nil }

func TestNewWorker(t *testing.T) {
	t.Run("invalid config is rejected before creation", func(t *testing.T) {
		created := withFakeWorkers(t, nil)
		f := testFactory()

		_, err := f.NewWorker(config.WorkerConfig{}, nil)

		require.Error(t, err)
		assert.Empty(t, created)
	})

	t.Run("registration callback sees the worker", func(t *testing.T) {
		created := withFakeWorkers(t, nil)
		f := testFactory()

		_, err := f.NewWorker(config.DefaultWorkerConfig("orders"), func(r Registry) {
			r.RegisterWorkflow(sampleWorkflow)
			r.RegisterActivity(sampleActivity)
		})

		require.NoError(t, err)
		w := created["orders"]
		require.NotNil(t, w)
		assert.Len(t, w.workflows, 1)
		assert.Len(t, w.activities, 1)
	})
}

func TestFactoryLifecycle(t *testing.T) {
	t.Run("start starts every worker and emits events", func(t *testing.T) {
		created := withFakeWorkers(t, nil)
		sink := &recordingSink{}
		f := testFactory(WithEventSink(sink))

		_, err := f.NewWorker(config.DefaultWorkerConfig("orders"), nil)
		require.NoError(t, err)
		_, err = f.NewWorker(config.DefaultWorkerConfig("billing"), nil)
		require.NoError(t, err)

		require.NoError(t, f.Start())
		assert.True(t, created["orders"].started)
		assert.True(t, created["billing"].started)
		assert.Equal(t,
			[]string{events.TypeWorkerStarted, events.TypeWorkerStarted},
			sink.types())
	})

	t.Run("start failure stops the workers already started", func(t *testing.T) {
		created := withFakeWorkers(t, map[string]error{
			"billing": errors.New("namespace not found"),
		})
		f := testFactory()

		_, err := f.NewWorker(config.DefaultWorkerConfig("orders"), nil)
		require.NoError(t, err)
		_, err = f.NewWorker(config.DefaultWorkerConfig("billing"), nil)
		require.NoError(t, err)

		err = f.Start()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "billing")
		assert.True(t, created["orders"].stopped)
	})

	t.Run("shutdown stops workers and emits stop events", func(t *testing.T) {
		created := withFakeWorkers(t, nil)
		sink := &recordingSink{}
		f := testFactory(WithEventSink(sink))

		_, err := f.NewWorker(config.DefaultWorkerConfig("orders"), nil)
		require.NoError(t, err)
		require.NoError(t, f.Start())

		f.Shutdown()

		assert.True(t, created["orders"].stopped)
		assert.Equal(t,
			[]string{events.TypeWorkerStarted, events.TypeWorkerStopped},
			sink.types())
	})

	t.Run("shutdown now emits the stop event after the stop completes", func(t *testing.T) {
		created := withFakeWorkers(t, nil)
		sink := signalingSink{ch: make(chan events.Envelope, 4)}
		f := testFactory(WithEventSink(sink))

		_, err := f.NewWorker(config.DefaultWorkerConfig("orders"), nil)
		require.NoError(t, err)
		require.NoError(t, f.Start())
		assert.Equal(t, events.TypeWorkerStarted, (<-sink.ch).Type)

		f.ShutdownNow()

		// The stopped event arrives only after the detached Stop returned,
		// so the worker must already be stopped when it is observed.
		ev := <-sink.ch
		assert.Equal(t, events.TypeWorkerStopped, ev.Type)
		assert.Equal(t, "orders", ev.TaskQueue)
		assert.True(t, created["orders"].stopped)
	})

	t.Run("shutdown is idempotent", func(t *testing.T) {
		withFakeWorkers(t, nil)
		sink := &recordingSink{}
		f := testFactory(WithEventSink(sink))

		_, err := f.NewWorker(config.DefaultWorkerConfig("orders"), nil)
		require.NoError(t, err)
		require.NoError(t, f.Start())

		f.Shutdown()
		f.Shutdown()

		assert.Len(t, sink.types(), 2)
	})
}
