package activity

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/go-temporalfx/pkg/effect"
)

// Error type tags attached to the ApplicationErrors produced by Adapt.
const (
	failureErrorType = "TypedFailure"
	defectErrorType  = "Defect"
)

// Adapt turns an effectful computation into an ordinary activity function.
// The computation's outcome is mapped into Temporal's error model: a typed
// failure becomes a retryable ApplicationError carrying the failure as its
// cause, while a defect becomes a non-retryable ApplicationError, since a
// bug or undeclared fault will not heal across attempts.
func Adapt[R any, E error, A any](env R, comp effect.Computation[R, E, A]) func(context.Context) (A, error) {
	return func(ctx context.Context) (A, error) {
		out := effect.Sandbox(env, comp)(ctx)

		if d, ok := out.Defect(); ok {
			var zero A
			return zero, temporal.NewNonRetryableApplicationError(
				fmt.Sprintf("activity defect: %v", d),
				defectErrorType,
				d,
			)
		}
		if e, ok := out.Failure(); ok {
			var zero A
			return zero, temporal.NewApplicationErrorWithCause(
				e.Error(),
				failureErrorType,
				e,
			)
		}

		a, _ := out.Value()
		return a, nil
	}
}
