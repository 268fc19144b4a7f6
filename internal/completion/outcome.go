package completion

import (
	"encoding/json"

	"github.com/rfinlay/toolchat/transcript"
)

// OutcomeKind enumerates the shapes a completion response reduces to. All
// branching downstream of the gateway is over this set, never over the raw
// wire shape.
type OutcomeKind int

const (
	// KindFinalAnswer means the model produced plain text and no tool call.
	KindFinalAnswer OutcomeKind = iota
	// KindToolCall means the model requested exactly one capability. When a
	// response lists several function calls, the first one wins.
	KindToolCall
	// KindMalformed means the response had no recognisable candidate or
	// content segments.
	KindMalformed
)

// ToolCall identifies the capability the model asked for. Args is the raw
// JSON argument map as the model produced it.
type ToolCall struct {
	Name string
	Args json.RawMessage
}

// Outcome is the gateway's parse of one completion response. Transport and
// non-success failures are not outcomes; they surface as Go errors and the
// loop treats them as its service-error terminal.
type Outcome struct {
	Kind OutcomeKind

	// Text is the answer text, set for KindFinalAnswer.
	Text string

	// Call is set for KindToolCall.
	Call *ToolCall

	// ModelTurn carries the candidate's content segments byte-for-byte as
	// they arrived, including any provenance metadata the service attached.
	// Set for KindToolCall; this exact turn must be re-appended to the
	// transcript, never rebuilt from the parsed fields.
	ModelTurn transcript.Turn
}
