// Package events provides the lifecycle event infrastructure for the worker
// factory. Envelopes wrap lifecycle notifications with consistent metadata
// and the Sink interface decouples emission from storage/transmission.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Lifecycle event types emitted by the worker factory.
const (
	TypeWorkerStarted = "worker.started"
	TypeWorkerStopped = "worker.stopped"
)

// Envelope wraps a lifecycle event with consistent metadata.
type Envelope struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Type identifies the event for routing, e.g. "worker.started".
	Type string `json:"type"`

	// Source identifies the component that emitted this event.
	Source string `json:"source"`

	// Timestamp records when the event was emitted.
	Timestamp time.Time `json:"timestamp"`

	// TaskQueue names the queue the worker in question polls.
	TaskQueue string `json:"task_queue"`

	// Payload carries optional event-specific data as JSON.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope constructs an envelope with a fresh ID and the current time.
func NewEnvelope(eventType, source, taskQueue string) Envelope {
	return Envelope{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now().UTC(),
		TaskQueue: taskQueue,
	}
}

// Sink receives lifecycle events with best-effort delivery. Implementations
// should return quickly; callers do not fail their primary operation when a
// sink errors.
type Sink interface {
	Append(ctx context.Context, envelope Envelope) error
}

// NoopSink discards all events. It is the default when emission is disabled.
type NoopSink struct{}

// Append implements Sink with no-op behavior.
func (NoopSink) Append(context.Context, Envelope) error { return nil }
