// Package logging adapts zerolog to the logging interface the Temporal SDK
// expects, so the SDK's internal reporting flows through the same structured
// logger as the rest of the process.
package logging

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.temporal.io/sdk/log"
)

// Logger implements Temporal's log.Logger on top of zerolog.
type Logger struct {
	zl zerolog.Logger
}

var _ log.Logger = (*Logger)(nil)

// NewLogger wraps zl for use as a Temporal SDK logger.
func NewLogger(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// Debug implements log.Logger.
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	emit(l.zl.Debug(), msg, keyvals)
}

// Info implements log.Logger.
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	emit(l.zl.Info(), msg, keyvals)
}

// Warn implements log.Logger.
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	emit(l.zl.Warn(), msg, keyvals)
}

// Error implements log.Logger.
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	emit(l.zl.Error(), msg, keyvals)
}

// emit attaches the SDK's alternating key/value pairs as structured fields.
// A trailing key without a value is logged with a nil value rather than
// dropped, so no information is lost on malformed input.
func emit(ev *zerolog.Event, msg string, keyvals []interface{}) {
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if i+1 < len(keyvals) {
			ev = ev.Interface(key, keyvals[i+1])
		} else {
			ev = ev.Interface(key, nil)
		}
	}
	ev.Msg(msg)
}
