package template

import (
	"strings"

	"github.com/ericvoid/ppdpy/pkg/expr"
)

// Render produces the document for the given symbol set: the literal
// text plus the first matching branch of each conditional block. Every
// stored line carries a trailing newline, including the last line of
// the document, so exactly one trailing newline is removed from the
// result. Rendering never mutates the template; concurrent renders
// over the same template are safe.
func (t *Template) Render(symbols expr.SymbolSet) string {
	var sb strings.Builder
	renderBlocks(&sb, t.blocks, symbols)
	return strings.TrimSuffix(sb.String(), linebreak)
}

// RenderMap renders using the keys of a map as the active symbol set;
// the values are ignored.
func RenderMap[V any](t *Template, m map[string]V) string {
	return t.Render(expr.SymbolSetFromKeys(m))
}

func renderBlocks(sb *strings.Builder, blocks []Block, symbols expr.SymbolSet) {
	for _, b := range blocks {
		renderBlock(sb, b, symbols)
	}
}

func renderBlock(sb *strings.Builder, block Block, symbols expr.SymbolSet) {
	switch b := block.(type) {
	case *TextBlock:
		sb.WriteString(b.Text)

	case *ConditionalBlock:
		for _, entry := range b.Entries {
			if expr.Evaluate(entry.Guard, symbols) {
				renderBlocks(sb, entry.Blocks, symbols)
				return
			}
		}
		// No guard matched; the block renders as nothing.
	}
}
