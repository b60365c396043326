package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ericvoid/ppdpy/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrefix(t *testing.T) {
	valid := []string{"#", "//", "%", "!", ";;", "#!", "@@", "pp:", "123"}
	for _, prefix := range valid {
		assert.NoError(t, ValidatePrefix(prefix), "prefix %q", prefix)
	}

	invalid := []string{"", " ", "# ", "\t", "§", "日", "#\n"}
	for _, prefix := range invalid {
		assert.Error(t, ValidatePrefix(prefix), "prefix %q", prefix)
	}
}

func TestNewCompiler_Default(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefix, c.Prefix())
}

func TestNewCompiler_InvalidPrefix(t *testing.T) {
	_, err := NewCompiler(WithPrefix(""))
	assert.Error(t, err)

	_, err = NewCompiler(WithPrefix("a b"))
	assert.Error(t, err)
}

func TestCompiler_CustomPrefix(t *testing.T) {
	c, err := NewCompiler(WithPrefix("//"))
	require.NoError(t, err)

	tmpl, err := c.CompileString(`//if a
X
//else
Y
//endif`)
	require.NoError(t, err)

	assert.Equal(t, "X", tmpl.Render(expr.NewSymbolSet("a")))
	assert.Equal(t, "Y", tmpl.Render(expr.NewSymbolSet()))
}

func TestCompiler_CustomPrefixLeavesDefaultAlone(t *testing.T) {
	c, err := NewCompiler(WithPrefix("%"))
	require.NoError(t, err)

	// Under the % prefix, #-lines are plain text.
	tmpl, err := c.CompileString("#if a\n%if a\nX\n%endif")
	require.NoError(t, err)

	assert.Equal(t, "#if a\nX", tmpl.Render(expr.NewSymbolSet("a")))
	assert.Equal(t, "#if a", tmpl.Render(expr.NewSymbolSet()))
}

func TestCompiler_DirectiveKeywordCase(t *testing.T) {
	// The directive keyword match is case-insensitive.
	tmpl := mustCompileString(t, "#IF a\nX\n#ElSe\nY\n#ENDIF")

	assert.Equal(t, "X", tmpl.Render(expr.NewSymbolSet("a")))
	assert.Equal(t, "Y", tmpl.Render(expr.NewSymbolSet()))
}

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("#if a\nX\n#endif\ntail\n"), 0o644))

	tmpl, err := CompileFile(path)
	require.NoError(t, err)
	assert.Equal(t, "X\ntail", tmpl.Render(expr.NewSymbolSet("a")))

	out, err := RenderFile(path, expr.NewSymbolSet())
	require.NoError(t, err)
	assert.Equal(t, "tail", out)
}

func TestCompileFile_Missing(t *testing.T) {
	_, err := CompileFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
