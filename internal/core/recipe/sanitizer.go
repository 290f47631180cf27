package recipe

import (
	"regexp"
	"strings"
)

var (
	openingFence = regexp.MustCompile("(?s)^```[a-zA-Z0-9]*[ \\t]*\\r?\\n?")
	closingFence = regexp.MustCompile("(?s)\\r?\\n?[ \\t]*```\\s*$")
)

// Sanitize strips markdown wrapper artifacts from raw model output: a
// leading code fence (with optional language tag), a trailing fence, and any
// stray backticks, then trims surrounding whitespace. Idempotent; makes no
// attempt to validate that the remainder is parseable.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = openingFence.ReplaceAllString(s, "")
	s = closingFence.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "`", "")
	return strings.TrimSpace(s)
}
