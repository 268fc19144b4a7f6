package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchURL_PolicyViolations(t *testing.T) {
	for name, url := range map[string]string{
		"scheme":   "ftp://example.com/x",
		"loopback": "http://127.0.0.1/secrets",
		"internal": "http://metadata.internal/creds",
	} {
		t.Run(name, func(t *testing.T) {
			input, _ := json.Marshal(map[string]string{"url": url})
			_, err := FetchURL(context.Background(), input)
			require.Error(t, err)
			// Policy errors are compact JSON bodies for the model.
			assert.True(t, strings.HasPrefix(err.Error(), "{"), "want ToolError JSON, got %q", err.Error())
		})
	}
}

func TestStripHTML(t *testing.T) {
	in := `<html><head><style>body{color:red}</style><script>alert(1)</script></head>
<body><h1>Title</h1><p>Hello &amp; welcome</p></body></html>`
	out := stripHTML(in)

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Hello & welcome")
	assert.NotContains(t, out, "alert(1)")
	assert.NotContains(t, out, "color:red")
	assert.NotContains(t, out, "<")
}

func TestWeather_RequiresCity(t *testing.T) {
	_, err := Weather(context.Background(), json.RawMessage(`{"city":"  "}`))
	assert.Error(t, err)
}

func TestCurrency_RejectsBadCodes(t *testing.T) {
	for _, input := range []string{
		`{"from":"US","to":"KRW"}`,
		`{"from":"USD","to":"WONS"}`,
		`{"from":"USD","to":"KRW","amount":-3}`,
	} {
		_, err := Currency(context.Background(), json.RawMessage(input))
		assert.Error(t, err, input)
	}
}

func TestSearch_RequiresQuery(t *testing.T) {
	_, err := Search(context.Background(), json.RawMessage(`{"query":""}`))
	assert.Error(t, err)
}
