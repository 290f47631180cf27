package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "fenced json with language tag",
			raw:  "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "fenced without language tag",
			raw:  "```\n[1,2]\n```",
			want: "[1,2]",
		},
		{
			name: "no fences is a no-op",
			raw:  `{"strMeal":"Tea"}`,
			want: `{"strMeal":"Tea"}`,
		},
		{
			name: "stray backticks stripped",
			raw:  "{\"strMeal\":\"`Tea`\"}",
			want: `{"strMeal":"Tea"}`,
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  \n {\"a\":1} \n\t",
			want: `{"a":1}`,
		},
		{
			name: "opening fence only",
			raw:  "```json\n{\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "fences only",
			raw:  "```json\n```",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.raw)
			assert.Equal(t, tt.want, got)
			// Idempotency: a second pass must change nothing.
			assert.Equal(t, got, Sanitize(got))
		})
	}
}

func TestSanitizeIdempotentOnArbitraryInput(t *testing.T) {
	inputs := []string{
		"plain text with no structure",
		"``` ```",
		"````",
		"multi\nline\n```\ntext",
		"   \t\n  ",
		"{\"nested\": \"```json\"}",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}
