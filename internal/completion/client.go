// Package completion is the gateway to the remote completion service. It
// adapts the transcript and the capability declarations into a wire request
// and reduces the wire response to a closed set of outcomes.
//
// The client deliberately works on raw JSON rather than a typed SDK: model
// turns carry opaque per-segment metadata that must round-trip unmodified,
// so segments are kept as the exact bytes the service produced.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/tidwall/gjson"

	"github.com/rfinlay/toolchat/transcript"
)

// maxResponseBytes caps how much of a completion response is read.
const maxResponseBytes = 4 << 20

// FunctionDeclaration is the capability descriptor the service receives on
// every call: the stable name, the natural-language description the model
// selects by, and the parameter schema.
type FunctionDeclaration struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// Client calls the completion service. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient builds a gateway client. httpClient may be nil, in which case
// http.DefaultClient is used (callers normally pass one with a timeout).
func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type wireRequest struct {
	Contents []transcript.Turn `json:"contents"`
	Tools    []wireTool        `json:"tools,omitempty"`
}

type wireTool struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations"`
}

// Complete sends the ordered transcript plus the full declaration list and
// parses the response. A transport failure or non-2xx status is returned as
// an error; everything else maps onto an Outcome.
func (c *Client) Complete(ctx context.Context, turns []transcript.Turn, decls []FunctionDeclaration) (*Outcome, error) {
	reqBody := wireRequest{Contents: turns}
	if len(decls) > 0 {
		reqBody.Tools = []wireTool{{FunctionDeclarations: decls}}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode completion request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("completion service returned %s: %s", resp.Status, errorSnippet(body))
	}

	return parseOutcome(body), nil
}

// GenerateText is the minimal text-only surface used by tools that make a
// second call back into the completion service (translate, summarize). No
// capability declarations are sent, so the model cannot recurse into tools.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	out, err := c.Complete(ctx, []transcript.Turn{transcript.UserText(prompt)}, nil)
	if err != nil {
		return "", err
	}
	if out.Kind != KindFinalAnswer {
		return "", errors.New("completion service returned no text")
	}
	return out.Text, nil
}

// parseOutcome reduces a 2xx response body to the closed outcome set. Content
// segments are lifted as raw byte ranges of the body so the model turn can be
// re-submitted byte-for-byte.
func parseOutcome(body []byte) *Outcome {
	parts := gjson.GetBytes(body, "candidates.0.content.parts")
	if !parts.IsArray() {
		return &Outcome{Kind: KindMalformed}
	}

	var (
		rawParts []json.RawMessage
		texts    []string
		call     *ToolCall
	)
	parts.ForEach(func(_, part gjson.Result) bool {
		rawParts = append(rawParts, json.RawMessage(part.Raw))
		if fc := part.Get("functionCall"); fc.Exists() {
			if call == nil { // first-listed wins
				args := json.RawMessage(fc.Get("args").Raw)
				if len(args) == 0 {
					args = json.RawMessage("{}")
				}
				call = &ToolCall{Name: fc.Get("name").String(), Args: args}
			}
			return true
		}
		if txt := part.Get("text"); txt.Exists() {
			texts = append(texts, txt.String())
		}
		return true
	})

	if call != nil {
		return &Outcome{
			Kind:      KindToolCall,
			Call:      call,
			ModelTurn: transcript.Turn{Role: transcript.RoleModel, Parts: rawParts},
		}
	}
	if len(texts) > 0 {
		return &Outcome{Kind: KindFinalAnswer, Text: strings.Join(texts, "\n")}
	}
	return &Outcome{Kind: KindMalformed}
}

// errorSnippet extracts the service's error message when present, falling
// back to a truncated body.
func errorSnippet(body []byte) string {
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
		return msg.String()
	}
	s := string(body)
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
