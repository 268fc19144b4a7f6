package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const maxAPIResponseBytes = 1 << 20

// getJSON fetches a third-party API endpoint and returns the (size-capped)
// body. Non-2xx statuses are errors so the dispatcher can surface them.
func getJSON(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "toolchat/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s returned %s", req.URL.Host, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxAPIResponseBytes))
}
