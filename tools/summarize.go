package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rfinlay/toolchat/internal/metrics"
	"github.com/rfinlay/toolchat/internal/telemetry"
)

type SummarizeInput struct {
	Text      string `json:"text" jsonschema_description:"Text to summarize."`
	Sentences int    `json:"sentences,omitempty" jsonschema_description:"Target length of the summary in sentences (default 3)."`
}

var SummarizeInputSchema = GenerateSchema[SummarizeInput]()

const defaultSummarySentences = 3

// SummarizeDefinition wires the summarize tool to a completer; summarization
// is a second, tool-free call into the completion service.
func SummarizeDefinition(completer TextCompleter) ToolDefinition {
	return ToolDefinition{
		Name:        "summarize",
		Description: "Summarize a passage of text into a few sentences.",
		InputSchema: SummarizeInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			return summarize(ctx, completer, input)
		},
	}
}

func summarize(ctx context.Context, completer TextCompleter, input json.RawMessage) (string, error) {
	var in SummarizeInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return "", fmt.Errorf("text is required")
	}
	sentences := in.Sentences
	if sentences <= 0 {
		sentences = defaultSummarySentences
	}

	telemetry.Emit(ctx, "summarize_input", metrics.CountFeatures(text).Fields("input"))

	prompt := fmt.Sprintf("Summarize the following text in at most %d sentences. Reply with only the summary.\n\n%s", sentences, text)
	return completer.GenerateText(ctx, prompt)
}
