package client

import (
	"context"

	"github.com/ahrav/go-temporalfx/pkg/effect"
)

// ExecuteEffect defers a workflow start-and-await into a Computation whose
// environment is the client it runs against. The declared failure domain E is
// matched against errors surfaced by the SDK (typically ApplicationError
// details); anything outside it is classified as a defect by the bridge.
func ExecuteEffect[E error, A any](
	opts StartOptions,
	workflow any,
	args ...any,
) effect.Computation[*Client, E, A] {
	return func(ctx context.Context, c *Client) (A, error) {
		run, err := Execute[A](ctx, c, opts, workflow, args...)
		if err != nil {
			var zero A
			return zero, err
		}
		return run.Get(ctx)
	}
}
