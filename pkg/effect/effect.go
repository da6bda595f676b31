// Package effect models effectful computations with a declared, typed failure
// domain and bridges them to callers that do not participate in that model.
//
// A Computation produces exactly one of three results when run: a success
// value, a typed failure drawn from its declared error type E, or a defect.
// A defect is any fault outside the declared domain: a panic, or a returned
// error that does not match E. The distinction matters because typed failures
// are part of a computation's contract and are recoverable by the caller,
// while defects indicate a bug or an undeclared condition.
//
// The bridge operations RunAsync and RunBlocking deliver this tri-state
// result across the boundary: RunAsync through a caller-supplied Observer,
// RunBlocking as an ordinary return value or error on the calling goroutine.
package effect

import (
	"context"
	"fmt"
)

// Computation is a deferred effectful operation. It requires an environment R
// to run, succeeds with an A, and declares E as its expected failure domain.
//
// The returned error is classified when the computation is run: a nil error
// is a success; an error matching E (via errors.As) is a typed failure;
// anything else, including a panic during execution, is a defect. Declaring
// E as the plain error interface makes every returned error a typed failure.
type Computation[R any, E error, A any] func(ctx context.Context, env R) (A, error)

// Observer receives the result of an asynchronously run Computation. Exactly
// one handler is invoked per run, matching the outcome's arm. Nil handlers
// drop that arm silently.
type Observer[E error, A any] struct {
	OnSuccess func(A)
	OnFailure func(E)
	OnDie     func(error)
}

// PanicError is the defect produced when a Computation panics. It carries the
// recovered value and the goroutine stack captured at recovery time.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("computation panicked: %v", p.Value)
}
