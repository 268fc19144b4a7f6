package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/rfinlay/toolchat/internal/safety"
)

type FetchURLInput struct {
	URL string `json:"url" jsonschema_description:"Absolute http(s) URL to fetch."`
}

var FetchURLInputSchema = GenerateSchema[FetchURLInput]()

var FetchURLDefinition = ToolDefinition{
	Name:        "fetch_url",
	Description: "Fetch a public web page and return its readable text content (truncated).",
	InputSchema: FetchURLInputSchema,
	Function:    FetchURL,
}

const fetchResultRuneCap = 8000
const fetchTruncationSentinel = "\n-- truncated --"

var (
	scriptStyleRe = regexp.MustCompile(`(?is)<(script|style|noscript)\b.*?</(script|style|noscript)>`)
	tagRe         = regexp.MustCompile(`(?s)<[^>]*>`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
)

// FetchURL retrieves a caller-chosen page within the outbound safety policy
// and returns a size-capped plain-text rendering.
func FetchURL(ctx context.Context, input json.RawMessage) (string, error) {
	var in FetchURLInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	u, err := safety.ValidateFetchURL(in.URL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "toolchat/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: %s", u.Hostname(), resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, safety.MaxFetchBytes))
	if err != nil {
		return "", err
	}

	text := string(raw)
	if strings.Contains(resp.Header.Get("Content-Type"), "html") || strings.Contains(text, "<html") {
		text = stripHTML(text)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("fetched document had no readable text")
	}

	if r := []rune(text); len(r) > fetchResultRuneCap {
		text = string(r[:fetchResultRuneCap]) + fetchTruncationSentinel
	}
	return text, nil
}

// stripHTML is a crude tag remover, good enough to hand page text to the
// model; it is not an HTML parser.
func stripHTML(s string) string {
	s = scriptStyleRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, "\n")
	s = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'", "&nbsp;", " ").Replace(s)

	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return blankRunRe.ReplaceAllString(b.String(), "\n\n")
}
