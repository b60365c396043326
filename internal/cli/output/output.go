// Package output handles CLI output rendering. Output adapts to the
// environment: plain text on a terminal, markdown when piped, or JSON
// when requested explicitly.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how command output is rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Modes returns the accepted mode names, for flag completion.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// Renderer writes command output in the configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	colors *termenv.Output
}

// NewRenderer creates a renderer for the given writers and mode.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		colors: termenv.NewOutput(out),
	}
}

// EffectiveMode resolves ModeAuto: text on a terminal, markdown when
// piped or redirected. Explicit modes pass through unchanged.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Writer returns the underlying output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Println writes a line to the output writer.
func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Success writes a green status line.
func (r *Renderer) Success(msg string) {
	r.Println(r.colors.String(msg).Foreground(r.colors.Color("2")).String())
}

// Failure writes a red status line to the error writer.
func (r *Renderer) Failure(msg string) {
	errColors := termenv.NewOutput(r.errOut)
	_, _ = fmt.Fprintln(r.errOut, errColors.String(msg).Foreground(errColors.Color("1")).String())
}

// FormatHeader formats a markdown header of the given level.
func FormatHeader(level int, text string) string {
	prefix := ""
	for i := 0; i < level; i++ {
		prefix += "#"
	}
	return prefix + " " + text
}

// FormatCodeBlock formats a fenced markdown code block.
func FormatCodeBlock(lang, body string) string {
	return "```" + lang + "\n" + body + "\n```"
}
