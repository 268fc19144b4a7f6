package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rfinlay/toolchat/internal/metrics"
	"github.com/rfinlay/toolchat/internal/telemetry"
)

const toolFailurePrefix = "tool execution failed: "

// invokeTool resolves and executes one capability, converting every failure
// into a descriptive result string. A single failing tool must not end the
// session; the model reads the failure and may retry or apologise.
func (r *Runner) invokeTool(ctx context.Context, name string, args json.RawMessage) string {
	start := time.Now()

	emit := func(output string, errStr string) {
		fields := map[string]any{
			"tool_name":   name,
			"duration_ms": time.Since(start).Milliseconds(),
			"input_size":  len(args),
		}
		for k, v := range metrics.CountFeatures(output).Fields("output") {
			fields[k] = v
		}
		if errStr != "" {
			fields["error"] = errStr
		}
		telemetry.Emit(ctx, "tool_exec", fields)
	}

	def, ok := r.registry.Resolve(name)
	if !ok {
		emit("", "unknown capability")
		return toolFailurePrefix + "unknown capability"
	}

	result, err := runExecutor(ctx, def.Function, args)
	if err != nil {
		// Keep the detailed reason in the result returned to the model, but
		// only a generic marker in telemetry to avoid logging payloads.
		emit("", "tool error")
		r.log.WithError(err).WithField("tool_name", name).Warn("tool execution failed")
		return toolFailurePrefix + err.Error()
	}

	emit(result, "")
	return result
}

// runExecutor shields the loop from executors that panic.
func runExecutor(ctx context.Context, fn func(context.Context, json.RawMessage) (string, error), args json.RawMessage) (result string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("executor panicked: %v", p)
		}
	}()
	return fn(ctx, args)
}
