// Package metrics computes local text features used to size tool inputs and
// outputs in telemetry events without logging the payloads themselves.
package metrics

import (
	"strings"
	"unicode/utf8"
)

// Features holds basic local text features derived from an input string.
type Features struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// CountFeatures computes byte, rune, word, and line counts for the input.
func CountFeatures(s string) Features {
	return Features{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: countWords(s),
		Lines: countLines(s),
	}
}

// Fields renders the features as event fields under the given prefix,
// e.g. "output" -> output_bytes, output_words.
func (f Features) Fields(prefix string) map[string]any {
	return map[string]any{
		prefix + "_bytes": f.Bytes,
		prefix + "_runes": f.Runes,
		prefix + "_words": f.Words,
		prefix + "_lines": f.Lines,
	}
}

// countWords counts words split on Unicode whitespace.
func countWords(s string) int {
	return len(strings.Fields(s))
}

// countLines returns 0 for empty strings; otherwise 1 plus the number of '\n' runes.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return 1 + strings.Count(s, "\n")
}
