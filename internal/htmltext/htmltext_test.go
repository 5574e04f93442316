package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "hello world", "hello world"},
		{"inline tags", "<b>Go</b> developer", "Go developer"},
		{"paragraphs keep word boundary", "<p>first</p><p>second</p>", "first second"},
		{"line breaks", "one<br>two<br/>three", "one two three"},
		{"list items", "<ul><li>Go</li><li>SQL</li></ul>", "Go SQL"},
		{"entities unescaped", "Tom &amp; Jerry", "Tom & Jerry"},
		{"script dropped", `<script>alert("x")</script>ok`, "ok"},
		{"collapses whitespace", "  a \n\n  b  ", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}
