// Package template compiles documents containing conditional directives
// (#if, #elif, #else, #endif by default) into reusable templates that
// render against different symbol sets. Guard expressions are compiled
// by pkg/expr.
package template

import "github.com/ericvoid/ppdpy/pkg/expr"

// Block is the interface for all template blocks. The variant set is
// closed: TextBlock and ConditionalBlock.
type Block interface {
	block() // marker method to restrict implementation
}

// TextBlock holds consecutive non-directive lines, each stored with a
// trailing newline.
type TextBlock struct {
	Text string
}

// Entry pairs a guard expression with the blocks of one conditional
// branch. An else branch is a trailing entry guarded by *expr.True.
type Entry struct {
	Guard  expr.Node
	Blocks []Block
}

// ConditionalBlock holds the entries of one #if/#elif/#else/#endif
// construct, ordered as written. At render time at most one entry's
// blocks are produced.
type ConditionalBlock struct {
	Entries []Entry
}

func (*TextBlock) block()        {}
func (*ConditionalBlock) block() {}

// Template is a compiled document. It is immutable once compiled and
// safe for concurrent renders.
type Template struct {
	blocks []Block
}

// Blocks returns the top-level blocks of the template.
func (t *Template) Blocks() []Block {
	return t.blocks
}
