// Package fiber provides a lightweight scheduler for running tasks as
// independently-scheduled units of work on goroutines. It exposes the three
// capabilities the effect bridge needs from an execution context: fork a task,
// observe its completion, and block until it finishes.
//
// A Runtime is safe for concurrent use by any number of callers. It does not
// impose timeouts or expose cancellation of individual fibers; callers that
// need either must build them into the task itself.
package fiber

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Task is a total unit of work: it always produces a T and never fails at the
// scheduling layer. Failure handling belongs to the task's own result type.
type Task[T any] func(ctx context.Context) T

// Runtime multiplexes fibers onto goroutines, optionally bounded by a
// concurrency limit. The zero value is not usable; construct with New.
type Runtime struct {
	base context.Context
	sem  *semaphore.Weighted
	wg   sync.WaitGroup
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLimit bounds the number of fibers that may run concurrently.
// Values less than or equal to zero mean no limit.
func WithLimit(n int64) Option {
	return func(rt *Runtime) {
		if n > 0 {
			rt.sem = semaphore.NewWeighted(n)
		}
	}
}

// WithBaseContext sets the context passed to every forked task. Cancelling it
// does not stop fibers; tasks observe cancellation through the context they
// receive.
func WithBaseContext(ctx context.Context) Option {
	return func(rt *Runtime) { rt.base = ctx }
}

// New creates a Runtime with the given options.
func New(opts ...Option) *Runtime {
	rt := &Runtime{base: context.Background()}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Wait blocks until every fiber forked so far has reached a terminal state.
// Observers attached to handles run on their own goroutines and are not
// awaited here.
func (rt *Runtime) Wait() { rt.wg.Wait() }

// Fork starts task as a new fiber and returns immediately with a handle to
// its eventual result. The fiber runs the task exactly once; its result is
// recorded on the handle before the handle is marked done.
func Fork[T any](rt *Runtime, task Task[T]) *Handle[T] {
	h := &Handle[T]{done: make(chan struct{})}
	rt.wg.Add(1)
	go func() {
		defer rt.wg.Done()
		if rt.sem != nil {
			// Acquire only fails when the base context is cancelled; the
			// task still runs so the handle always completes, and the task
			// sees the cancelled context.
			if err := rt.sem.Acquire(rt.base, 1); err == nil {
				defer rt.sem.Release(1)
			}
		}
		h.result = task(rt.base)
		close(h.done)
	}()
	return h
}

// Run forks task and blocks the calling goroutine until it completes.
// If the task never completes, Run never returns.
func Run[T any](rt *Runtime, task Task[T]) T {
	return Fork(rt, task).Join()
}
