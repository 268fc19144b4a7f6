package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type TranslateInput struct {
	Text           string `json:"text" jsonschema_description:"Text to translate."`
	TargetLanguage string `json:"target_language" jsonschema_description:"Language to translate into, e.g. \"French\" or \"Korean\"."`
}

var TranslateInputSchema = GenerateSchema[TranslateInput]()

// TranslateDefinition wires the translate tool to a completer; translation is
// itself a second, tool-free call into the completion service.
func TranslateDefinition(completer TextCompleter) ToolDefinition {
	return ToolDefinition{
		Name:        "translate",
		Description: "Translate text into a target language.",
		InputSchema: TranslateInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			return translate(ctx, completer, input)
		},
	}
}

func translate(ctx context.Context, completer TextCompleter, input json.RawMessage) (string, error) {
	var in TranslateInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	text := strings.TrimSpace(in.Text)
	lang := strings.TrimSpace(in.TargetLanguage)
	if text == "" || lang == "" {
		return "", fmt.Errorf("text and target_language are required")
	}

	prompt := fmt.Sprintf("Translate the following text into %s. Reply with only the translation, no commentary.\n\n%s", lang, text)
	return completer.GenerateText(ctx, prompt)
}
