package fiber

import "context"

// Handle is the caller's view of a forked fiber. It completes exactly once.
type Handle[T any] struct {
	done   chan struct{}
	result T
}

// Done returns a channel that is closed when the fiber reaches a terminal
// state. The result is visible to any goroutine that observed the close.
func (h *Handle[T]) Done() <-chan struct{} { return h.done }

// Observe registers fn to be invoked with the fiber's result once it
// completes. Each call registers an independent watcher that fires exactly
// once, on its own goroutine, including when the fiber already completed.
func (h *Handle[T]) Observe(fn func(T)) {
	go func() {
		<-h.done
		fn(h.result)
	}()
}

// Join blocks until the fiber completes and returns its result. A fiber that
// never completes blocks Join forever; timeout policy belongs to the caller.
func (h *Handle[T]) Join() T {
	<-h.done
	return h.result
}

// Await blocks until the fiber completes or ctx is done, whichever comes
// first. The fiber keeps running if ctx wins; only the wait is abandoned.
func Await[T any](ctx context.Context, h *Handle[T]) (T, error) {
	select {
	case <-h.done:
		return h.result, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
