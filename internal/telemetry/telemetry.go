// Package telemetry emits structured lifecycle events for orchestration
// runs: completion calls, tool executions, and terminal outcomes.
package telemetry

import (
	"context"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// SetLogger installs the process logger events are written to. Call once
// during startup, before serving traffic; a nil logger disables emission.
func SetLogger(l *logrus.Logger) {
	logger = l
}

// Emit records a single lifecycle event as one structured log entry. Fields
// are copied so callers' maps aren't mutated; the request ID is attached when
// ctx carries one.
func Emit(ctx context.Context, name string, fields map[string]any) {
	if logger == nil || !eventsEnabled {
		return
	}

	m := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		m[k] = v
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		m["request_id"] = id
	}
	logger.WithFields(logrus.Fields(m)).Info(name)
}
