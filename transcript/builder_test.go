package transcript_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfinlay/toolchat/transcript"
)

func partText(t *testing.T, p json.RawMessage) string {
	t.Helper()
	var body struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(p, &body))
	return body.Text
}

func TestBuild_EmptyHistoryPrefixesSystemInstruction(t *testing.T) {
	turns := transcript.Build(nil, "What's the weather in Seoul?")
	require.Len(t, turns, 1)
	assert.Equal(t, transcript.RoleUser, turns[0].Role)

	text := partText(t, turns[0].Parts[0])
	assert.True(t, strings.HasPrefix(text, transcript.SystemInstruction))
	assert.True(t, strings.HasSuffix(text, "What's the weather in Seoul?"))
}

func TestBuild_NonEmptyHistoryOmitsSystemInstruction(t *testing.T) {
	history := []transcript.Message{
		{Role: "user", Text: "hi"},
		{Role: "assistant", Text: "hello"},
	}
	turns := transcript.Build(history, "and now?")
	require.Len(t, turns, 3)

	assert.Equal(t, transcript.RoleUser, turns[0].Role)
	assert.Equal(t, transcript.RoleModel, turns[1].Role)
	assert.Equal(t, transcript.RoleUser, turns[2].Role)

	assert.Equal(t, "hi", partText(t, turns[0].Parts[0]))
	assert.Equal(t, "hello", partText(t, turns[1].Parts[0]))
	assert.Equal(t, "and now?", partText(t, turns[2].Parts[0]))
}

func TestBuild_UnknownRoleMapsToUser(t *testing.T) {
	turns := transcript.Build([]transcript.Message{{Role: "system", Text: "x"}}, "q")
	require.Len(t, turns, 2)
	assert.Equal(t, transcript.RoleUser, turns[0].Role)
}

func TestToolResultTurn_Shape(t *testing.T) {
	turn := transcript.ToolResultTurn("weather", "5C and clear")
	assert.Equal(t, transcript.RoleUser, turn.Role)
	require.Len(t, turn.Parts, 1)

	var body struct {
		FunctionResponse struct {
			Name     string `json:"name"`
			Response struct {
				Content string `json:"content"`
			} `json:"response"`
		} `json:"functionResponse"`
	}
	require.NoError(t, json.Unmarshal(turn.Parts[0], &body))
	assert.Equal(t, "weather", body.FunctionResponse.Name)
	assert.Equal(t, "5C and clear", body.FunctionResponse.Response.Content)
}

func TestTurn_MarshalPreservesRawParts(t *testing.T) {
	// Opaque metadata attached by the service must survive a re-marshal
	// byte-for-byte.
	raw := json.RawMessage(`{"functionCall":{"name":"weather","args":{"city":"Seoul"}},"thoughtSignature":"abc123"}`)
	turn := transcript.Turn{Role: transcript.RoleModel, Parts: []json.RawMessage{raw}}

	b, err := json.Marshal(turn)
	require.NoError(t, err)
	assert.Contains(t, string(b), string(raw))
}
