package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"auto falls back to markdown when not a terminal", ModeAuto, ModeMarkdown},
		{"empty mode means auto", "", ModeMarkdown},
		{"explicit text", ModeText, ModeText},
		{"explicit markdown", ModeMarkdown, ModeMarkdown},
		{"explicit json", ModeJSON, ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(&buf, &buf, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRendererWrites(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Println("hello")
	r.Printf("%s=%d\n", "n", 1)
	assert.Equal(t, "hello\nn=1\n", out.String())

	r.Success("done")
	assert.Contains(t, out.String(), "done")

	r.Failure("broken")
	assert.Contains(t, errOut.String(), "broken")
	assert.NotContains(t, out.String(), "broken")
}

func TestModes(t *testing.T) {
	assert.Equal(t, []string{"auto", "text", "markdown", "json"}, Modes())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "## Sub", FormatHeader(2, "Sub"))
	assert.Equal(t, "```go\nx := 1\n```", FormatCodeBlock("go", "x := 1"))
	assert.Equal(t, "```\nbody\n```", FormatCodeBlock("", "body"))
}
