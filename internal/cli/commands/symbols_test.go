package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execSymbols(t *testing.T) (string, error) {
	t.Helper()

	cmd := NewSymbolsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func TestSymbolsCommand_Empty(t *testing.T) {
	t.Setenv("PPDPY_OUTPUT", "text")

	out, err := execSymbols(t)
	require.NoError(t, err)
	assert.Contains(t, out, "No symbols or profiles configured.")
}

func TestSymbolsCommand_Table(t *testing.T) {
	t.Setenv("PPDPY_OUTPUT", "text")
	t.Setenv("PPDPY_SYMBOLS", "alpha,beta")

	out, err := execSymbols(t)
	require.NoError(t, err)
	assert.Contains(t, out, "(base)")
	assert.Contains(t, out, "alpha, beta")
}

func TestSymbolsCommand_JSON(t *testing.T) {
	t.Setenv("PPDPY_OUTPUT", "json")
	t.Setenv("PPDPY_SYMBOLS", "alpha,beta")

	out, err := execSymbols(t)
	require.NoError(t, err)

	var res symbolsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"alpha", "beta"}, res.Symbols)
	assert.Empty(t, res.Profiles)
}
