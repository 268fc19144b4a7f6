package transcript

import "encoding/json"

// Message is one caller-supplied history item. The caller is the only place
// conversation identity lives; nothing is persisted between requests.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// SystemInstruction is prefixed to the user's first message. Later turns rely
// on it persisting in the caller-supplied history; if the caller truncates
// history the anchoring is lost (accepted limitation).
const SystemInstruction = `You are Marlo, a concise and friendly assistant. Answer in the language the user writes in. Only invoke a tool when the user's request requires live or external information; answer from your own knowledge otherwise.`

// Build converts prior history plus the new user message into the ordered
// turn sequence the completion service consumes. Caller roles map 1:1:
// "assistant" becomes a model turn, anything else a user turn.
func Build(history []Message, userMessage string) []Turn {
	turns := make([]Turn, 0, len(history)+1)
	for _, m := range history {
		role := RoleUser
		if m.Role == "assistant" {
			role = RoleModel
		}
		turns = append(turns, Turn{Role: role, Parts: []json.RawMessage{TextPart(m.Text)}})
	}
	text := userMessage
	if len(history) == 0 {
		text = SystemInstruction + "\n\n" + userMessage
	}
	return append(turns, UserText(text))
}
