package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

type SearchInput struct {
	Query string `json:"query" jsonschema_description:"Search query."`
}

var SearchInputSchema = GenerateSchema[SearchInput]()

var SearchDefinition = ToolDefinition{
	Name:        "search",
	Description: "Look up a topic on the web and return a short factual summary with related results.",
	InputSchema: SearchInputSchema,
	Function:    Search,
}

const searchEndpoint = "https://api.duckduckgo.com/"

const maxRelatedResults = 3

func Search(ctx context.Context, input json.RawMessage) (string, error) {
	var in SearchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return "", fmt.Errorf("query is required")
	}

	body, err := getJSON(ctx, fmt.Sprintf("%s?q=%s&format=json&no_html=1&skip_disambig=1", searchEndpoint, url.QueryEscape(query)))
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}

	var lines []string
	if abstract := gjson.GetBytes(body, "AbstractText").String(); abstract != "" {
		lines = append(lines, abstract)
		if src := gjson.GetBytes(body, "AbstractURL").String(); src != "" {
			lines = append(lines, "Source: "+src)
		}
	}
	if answer := gjson.GetBytes(body, "Answer").String(); answer != "" {
		lines = append(lines, answer)
	}

	related := gjson.GetBytes(body, "RelatedTopics")
	count := 0
	related.ForEach(func(_, topic gjson.Result) bool {
		if count >= maxRelatedResults {
			return false
		}
		if text := topic.Get("Text").String(); text != "" {
			lines = append(lines, "- "+text)
			count++
		}
		return true
	})

	if len(lines) == 0 {
		return fmt.Sprintf("No results found for %q.", query), nil
	}
	return strings.Join(lines, "\n"), nil
}
