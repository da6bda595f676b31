package sample

import (
	"context"
	"fmt"

	pkgactivity "github.com/ahrav/go-temporalfx/pkg/activity"
	"github.com/ahrav/go-temporalfx/pkg/effect"
)

// MaxNameLength bounds the accepted name length.
const MaxNameLength = 200

// NameTooLong is the declared failure domain of ComposeGreeting.
type NameTooLong struct {
	Length int `json:"length"`
}

func (e NameTooLong) Error() string {
	return fmt.Sprintf("name of %d characters exceeds limit of %d", e.Length, MaxNameLength)
}

// Activities holds the sample activity implementations.
type Activities struct{}

// NewActivities creates the sample activity set.
func NewActivities() *Activities { return &Activities{} }

// ComposeGreeting builds the greeting message. The body is an effectful
// computation whose environment is the request itself; the adapter classifies
// its result into Temporal's error model.
func (a *Activities) ComposeGreeting(ctx context.Context, req GreetingRequest) (GreetingResult, error) {
	comp := effect.Computation[GreetingRequest, NameTooLong, GreetingResult](
		func(ctx context.Context, r GreetingRequest) (GreetingResult, error) {
			ec := pkgactivity.GetExecutionContext(ctx)
			pkgactivity.SafeLog(ctx, "composing greeting",
				"workflow_id", ec.WorkflowID,
				"attempt", ec.Attempt,
			)

			if len(r.Name) > MaxNameLength {
				return GreetingResult{}, NameTooLong{Length: len(r.Name)}
			}

			pkgactivity.RecordHeartbeat(ctx, "composed")
			return GreetingResult{Message: fmt.Sprintf("Hello, %s!", r.Name)}, nil
		})

	return pkgactivity.Adapt(req, comp)(ctx)
}
