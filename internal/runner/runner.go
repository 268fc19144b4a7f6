// Package runner drives one orchestration run: it alternates completion
// calls and tool executions until the model produces a final answer or the
// tool-call budget is spent. Runs are strictly sequential; at most one
// completion call or tool call is in flight at any time.
package runner

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rfinlay/toolchat/internal/completion"
	"github.com/rfinlay/toolchat/internal/telemetry"
	"github.com/rfinlay/toolchat/tools"
	"github.com/rfinlay/toolchat/transcript"
)

// Fixed terminal replies. Callers never see a structural error; the reply
// text is the only channel that communicates how a run ended.
const (
	serviceErrorReply    = "Sorry, I couldn't reach the language model. Please try again in a moment."
	malformedReply       = "Sorry, I couldn't process the model's response. Please try again."
	budgetExhaustedReply = "I couldn't finish answering within the tool-call budget. Please try asking again."
)

// Result is the output shape of every run, terminal state notwithstanding.
type Result struct {
	Reply     string
	ToolsUsed []string
}

// Gateway is the completion-service surface the loop suspends on.
type Gateway interface {
	Complete(ctx context.Context, turns []transcript.Turn, decls []completion.FunctionDeclaration) (*completion.Outcome, error)
}

// Runner owns one fixed gateway/registry pair and is shared across requests;
// all per-run state lives in Run's locals.
type Runner struct {
	gateway  Gateway
	registry *tools.Registry
	maxCalls int
	log      *logrus.Entry
	decls    []completion.FunctionDeclaration
}

// New builds a runner. maxCalls bounds tool invocations per run.
func New(gateway Gateway, registry *tools.Registry, maxCalls int, log *logrus.Entry) *Runner {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	defs := registry.DescribeAll()
	decls := make([]completion.FunctionDeclaration, 0, len(defs))
	for _, def := range defs {
		decls = append(decls, completion.FunctionDeclaration{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  def.InputSchema,
		})
	}
	return &Runner{
		gateway:  gateway,
		registry: registry,
		maxCalls: maxCalls,
		log:      log,
		decls:    decls,
	}
}

// Run executes the loop over the prepared transcript. It never returns an
// error and never panics outward: every failure mode maps to a terminal
// reply, preserving the tools used so far.
func (r *Runner) Run(ctx context.Context, turns []transcript.Turn) Result {
	toolsUsed := []string{}
	callsRemaining := r.maxCalls

	for {
		out, err := r.gateway.Complete(ctx, turns, r.decls)
		if err != nil {
			r.log.WithError(err).Warn("completion service call failed")
			telemetry.Emit(ctx, "completion_error", map[string]any{"tools_used": len(toolsUsed)})
			return Result{Reply: serviceErrorReply, ToolsUsed: toolsUsed}
		}

		switch out.Kind {
		case completion.KindFinalAnswer:
			return Result{Reply: out.Text, ToolsUsed: toolsUsed}

		case completion.KindToolCall:
			call := out.Call
			// The model turn goes back into the transcript exactly as it
			// arrived; its provenance metadata is opaque to us.
			turns = append(turns, out.ModelTurn)
			toolsUsed = append(toolsUsed, call.Name)

			result := r.invokeTool(ctx, call.Name, call.Args)
			turns = append(turns, transcript.ToolResultTurn(call.Name, result))

			callsRemaining--
			if callsRemaining <= 0 {
				r.log.WithField("tools_used", toolsUsed).Info("tool-call budget exhausted")
				telemetry.Emit(ctx, "budget_exhausted", map[string]any{"tools_used": len(toolsUsed)})
				return Result{Reply: budgetExhaustedReply, ToolsUsed: toolsUsed}
			}

		default: // completion.KindMalformed
			r.log.Warn("completion response had no usable content")
			return Result{Reply: malformedReply, ToolsUsed: toolsUsed}
		}
	}
}
