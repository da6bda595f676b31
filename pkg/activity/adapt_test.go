package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/go-temporalfx/pkg/effect"
)

type quotaExceeded struct{ Limit int }

func (q quotaExceeded) Error() string { return "quota exceeded" }

func TestAdapt(t *testing.T) {
	ctx := context.Background()

	t.Run("success passes the value through", func(t *testing.T) {
		fn := Adapt(struct{}{}, effect.Computation[struct{}, quotaExceeded, string](
			func(context.Context, struct{}) (string, error) { return "ok", nil }))

		v, err := fn(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("typed failure becomes a retryable ApplicationError", func(t *testing.T) {
		fn := Adapt(struct{}{}, effect.Computation[struct{}, quotaExceeded, string](
			func(context.Context, struct{}) (string, error) {
				return "", quotaExceeded{Limit: 10}
			}))

		_, err := fn(ctx)
		require.Error(t, err)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "TypedFailure", appErr.Type())
		assert.False(t, appErr.NonRetryable())

		var q quotaExceeded
		assert.ErrorAs(t, err, &q)
	})

	t.Run("panic becomes a non-retryable ApplicationError", func(t *testing.T) {
		fn := Adapt(struct{}{}, effect.Computation[struct{}, quotaExceeded, string](
			func(context.Context, struct{}) (string, error) { panic("corrupt state") }))

		_, err := fn(ctx)
		require.Error(t, err)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Defect", appErr.Type())
		assert.True(t, appErr.NonRetryable())
	})

	t.Run("undeclared error becomes a non-retryable defect", func(t *testing.T) {
		fn := Adapt(struct{}{}, effect.Computation[struct{}, quotaExceeded, string](
			func(context.Context, struct{}) (string, error) {
				return "", errors.New("disk full")
			}))

		_, err := fn(ctx)
		require.Error(t, err)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Defect", appErr.Type())
	})
}

func TestGetExecutionContext(t *testing.T) {
	// Outside an activity context the extraction falls back to generated
	// test identifiers instead of panicking.
	ec := GetExecutionContext(context.Background())

	assert.Contains(t, ec.WorkflowID, "test-workflow-")
	assert.Contains(t, ec.RunID, "test-run-")
	assert.Equal(t, "test-activity", ec.ActivityID)
	assert.Equal(t, int32(1), ec.Attempt)
}

func TestSafeHelpers(t *testing.T) {
	// All helpers must be no-ops outside an activity context.
	ctx := context.Background()
	SafeLog(ctx, "message", "k", "v")
	SafeLogError(ctx, "message", "k", "v")
	RecordHeartbeat(ctx, "progress")
}
