package effect

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/ahrav/go-temporalfx/pkg/fiber"
)

// Sandbox folds a Computation into a total task producing an Outcome.
// Both failure modes are funneled into the Outcome's tagged arms: a returned
// error matching E becomes a typed failure, any other returned error becomes
// a defect, and a panic is recovered into a *PanicError defect. The resulting
// task never fails at the scheduling layer, so a single completion watcher
// can dispatch on the arm without an unmatched case.
func Sandbox[R any, E error, A any](env R, comp Computation[R, E, A]) fiber.Task[Outcome[E, A]] {
	return func(ctx context.Context) (out Outcome[E, A]) {
		defer func() {
			if r := recover(); r != nil {
				out = Die[E, A](&PanicError{Value: r, Stack: debug.Stack()})
			}
		}()
		a, err := comp(ctx, env)
		return classify[E](a, err)
	}
}

func classify[E error, A any](a A, err error) Outcome[E, A] {
	if err == nil {
		return Succeed[E](a)
	}
	var e E
	if errors.As(err, &e) {
		return FailWith[A](e)
	}
	return Die[E, A](err)
}

// RunAsync starts comp as a fiber on rt and reports its outcome through obs.
// It returns immediately; the matching Observer handler fires exactly once,
// later, on a watcher goroutine. No error is raised synchronously and defects
// are not logged here — the caller's OnDie handler owns all reporting.
//
// Cancellation of the fiber is not exposed; a caller needing it must arrange
// it through the computation's context.
func RunAsync[R any, E error, A any](
	rt *fiber.Runtime,
	env R,
	comp Computation[R, E, A],
	obs Observer[E, A],
) {
	h := fiber.Fork(rt, Sandbox(env, comp))
	h.Observe(func(out Outcome[E, A]) {
		switch {
		case out.IsFailure():
			if obs.OnFailure != nil {
				obs.OnFailure(out.failure)
			}
		case out.IsDefect():
			if obs.OnDie != nil {
				obs.OnDie(out.defect)
			}
		default:
			if obs.OnSuccess != nil {
				obs.OnSuccess(out.value)
			}
		}
	})
}

// RunBlocking runs comp on rt and blocks the calling goroutine until it
// completes. On success the value is returned; a typed failure is returned as
// convertFailure(e) and a defect as convertDefect(d). A computation that
// never completes blocks forever; timeout policy belongs to the caller or
// the computation itself.
//
// The conversion functions run on the calling goroutine and are expected to
// be total: a panic inside either propagates to the caller unguarded.
func RunBlocking[R any, E error, A any](
	rt *fiber.Runtime,
	env R,
	comp Computation[R, E, A],
	convertFailure func(E) error,
	convertDefect func(error) error,
) (A, error) {
	out := fiber.Run(rt, Sandbox(env, comp))
	switch {
	case out.IsFailure():
		var zero A
		return zero, convertFailure(out.failure)
	case out.IsDefect():
		var zero A
		return zero, convertDefect(out.defect)
	default:
		return out.value, nil
	}
}
