package template

import "github.com/ericvoid/ppdpy/pkg/expr"

// Package-level entry points compile with the default "#" prefix. For
// a different prefix, construct a Compiler with WithPrefix.

var defaultCompiler = mustCompiler()

func mustCompiler() *Compiler {
	c, err := NewCompiler()
	if err != nil {
		panic(err)
	}
	return c
}

// Compile compiles a sequence of lines with the default prefix.
func Compile(lines []string) (*Template, error) {
	return defaultCompiler.Compile(lines)
}

// CompileString compiles a whole document with the default prefix.
func CompileString(text string) (*Template, error) {
	return defaultCompiler.CompileString(text)
}

// CompileFile compiles the document at path with the default prefix.
func CompileFile(path string) (*Template, error) {
	return defaultCompiler.CompileFile(path)
}

// Render renders a compiled template against a symbol set. Unlike the
// Template method, it reports ErrNilTemplate when no compiled template
// is supplied.
func Render(t *Template, symbols expr.SymbolSet) (string, error) {
	if t == nil {
		return "", ErrNilTemplate
	}
	return t.Render(symbols), nil
}

// RenderString compiles text with the default prefix and renders it.
func RenderString(text string, symbols expr.SymbolSet) (string, error) {
	t, err := CompileString(text)
	if err != nil {
		return "", err
	}
	return t.Render(symbols), nil
}

// RenderFile compiles the document at path with the default prefix and
// renders it.
func RenderFile(path string, symbols expr.SymbolSet) (string, error) {
	t, err := CompileFile(path)
	if err != nil {
		return "", err
	}
	return t.Render(symbols), nil
}
