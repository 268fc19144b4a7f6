// Package tools defines the capability contracts, the registry, and the
// executors the model may invoke.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Registry: the single source of truth mapping name -> executor,
//     populated once at startup and immutable afterwards.
//   - Executors: weather, currency, translate, summarize, search, fetch_url,
//     calc, clock. Each performs its own network I/O where needed; failures
//     are returned as errors, never encoded silently into the result string.
package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/invopop/jsonschema"
)

// ToolDefinition describes one capability: the stable name the model selects
// by, the description it reads, the parameter schema, and the executor.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Function    func(ctx context.Context, input json.RawMessage) (string, error)
}

// TextCompleter is the minimal completion surface needed by tools that make
// a second, tool-free call back into the completion service.
type TextCompleter interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GenerateSchema derives a self-contained JSON schema from a Go struct.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""
	return schema
}

// httpClient is shared by all executors that reach external services.
var httpClient = &http.Client{Timeout: 15 * time.Second}
