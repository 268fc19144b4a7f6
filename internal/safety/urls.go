// Package safety provides the outbound-request policy for tools that fetch
// caller-chosen URLs.
package safety

import (
	"encoding/json"
	"net"
	"net/url"
	"strings"
)

// MaxFetchBytes caps how much of a fetched response body is read. Keeps tool
// results predictably small for the model.
const MaxFetchBytes = 64 * 1024

// ToolError is a machine-readable error body for surfacing back to the model
// as a tool result.
type ToolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error returns a compact, single-line JSON string to keep tool result
// payloads small.
func (e ToolError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// ValidateFetchURL parses rawURL and enforces the outbound policy: http or
// https only, a non-empty host, and no loopback, private, or link-local
// targets. On violation it returns a ToolError.
func ValidateFetchURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, ToolError{Code: "ERR_URL_INVALID", Message: "could not parse url"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ToolError{Code: "ERR_URL_SCHEME", Message: "only http and https urls are allowed"}
	}
	host := u.Hostname()
	if host == "" {
		return nil, ToolError{Code: "ERR_URL_INVALID", Message: "url has no host"}
	}
	if isDeniedHost(host) {
		return nil, ToolError{Code: "ERR_URL_DENIED", Message: "loopback and private hosts are not allowed"}
	}
	return u, nil
}

// isDeniedHost blocks obvious internal targets. Literal IPs are classified
// directly; hostname denial is by name only (no resolution here, the policy
// is a guard rail rather than an egress firewall).
func isDeniedHost(host string) bool {
	lower := strings.ToLower(host)
	if lower == "localhost" || strings.HasSuffix(lower, ".localhost") || strings.HasSuffix(lower, ".local") || strings.HasSuffix(lower, ".internal") {
		return true
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsUnspecified()
}
