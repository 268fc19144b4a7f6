package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfinlay/toolchat/internal/httpapi"
	"github.com/rfinlay/toolchat/internal/runner"
	"github.com/rfinlay/toolchat/transcript"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockLoop implements httpapi.Loop for handler tests.
type mockLoop struct {
	runFunc func(ctx context.Context, turns []transcript.Turn) runner.Result
	turns   []transcript.Turn
}

func (m *mockLoop) Run(ctx context.Context, turns []transcript.Turn) runner.Result {
	m.turns = turns
	if m.runFunc != nil {
		return m.runFunc(ctx, turns)
	}
	return runner.Result{Reply: "mock reply", ToolsUsed: []string{}}
}

func postChat(t *testing.T, srv *httpapi.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleChat_Success(t *testing.T) {
	loop := &mockLoop{
		runFunc: func(context.Context, []transcript.Turn) runner.Result {
			return runner.Result{Reply: "It's 5°C and clear in Seoul.", ToolsUsed: []string{"weather"}}
		},
	}
	srv := httpapi.New(loop, nil)

	w := postChat(t, srv, `{"message":"What's the weather in Seoul?","history":[]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp httpapi.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "It's 5°C and clear in Seoul.", resp.Reply)
	assert.Equal(t, []string{"weather"}, resp.ToolsUsed)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandleChat_BuildsTranscriptFromHistory(t *testing.T) {
	loop := &mockLoop{}
	srv := httpapi.New(loop, nil)

	w := postChat(t, srv, `{"message":"next","history":[{"role":"user","text":"hi"},{"role":"assistant","text":"hello"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, loop.turns, 3)
	assert.Equal(t, transcript.RoleUser, loop.turns[0].Role)
	assert.Equal(t, transcript.RoleModel, loop.turns[1].Role)
	assert.Equal(t, transcript.RoleUser, loop.turns[2].Role)
}

func TestHandleChat_MissingMessage(t *testing.T) {
	srv := httpapi.New(&mockLoop{}, nil)

	for name, body := range map[string]string{
		"absent":     `{"history":[]}`,
		"blank":      `{"message":"   "}`,
		"non-string": `{"message":42}`,
		"bad json":   `{`,
	} {
		t.Run(name, func(t *testing.T) {
			w := postChat(t, srv, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleChat_EmptyToolsUsedMarshalsAsArray(t *testing.T) {
	loop := &mockLoop{
		runFunc: func(context.Context, []transcript.Turn) runner.Result {
			return runner.Result{Reply: "plain answer", ToolsUsed: []string{}}
		},
	}
	srv := httpapi.New(loop, nil)

	w := postChat(t, srv, `{"message":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tools_used":[]`)
}

func TestHealthz(t *testing.T) {
	srv := httpapi.New(&mockLoop{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWidgetServed(t *testing.T) {
	srv := httpapi.New(&mockLoop{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/api/chat")
}
