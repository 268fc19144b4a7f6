package transcript

import "encoding/json"

// Roles the completion service understands.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one entry of the transcript. Parts hold the exact JSON bytes of
// each content segment: segments we build locally are marshalled once, and
// segments produced by the model are the byte slices lifted from its
// response. Turns are never normalised or reconstructed after that point.
type Turn struct {
	Role  string            `json:"role"`
	Parts []json.RawMessage `json:"parts"`
}

// TextPart builds a plain text segment.
func TextPart(text string) json.RawMessage {
	b, _ := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: text})
	return b
}

type functionResponseBody struct {
	Name     string `json:"name"`
	Response struct {
		Content string `json:"content"`
	} `json:"response"`
}

// FunctionResponsePart builds a tool-result segment carrying the named
// tool's string result.
func FunctionResponsePart(name, result string) json.RawMessage {
	var body functionResponseBody
	body.Name = name
	body.Response.Content = result
	b, _ := json.Marshal(struct {
		FunctionResponse functionResponseBody `json:"functionResponse"`
	}{FunctionResponse: body})
	return b
}

// UserText builds a user turn with a single text segment.
func UserText(text string) Turn {
	return Turn{Role: RoleUser, Parts: []json.RawMessage{TextPart(text)}}
}

// ToolResultTurn builds the user-role turn that answers a tool call. Every
// tool-call segment appended to the transcript must be followed by exactly
// one of these before the next completion call.
func ToolResultTurn(name, result string) Turn {
	return Turn{Role: RoleUser, Parts: []json.RawMessage{FunctionResponsePart(name, result)}}
}
