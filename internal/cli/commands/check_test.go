package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCheck(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewCheckCommand()
	// The root command silences usage and error echo; standalone
	// execution must match, or cobra appends usage text to the buffers.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckCommand_AllValid(t *testing.T) {
	t.Setenv("PPDPY_OUTPUT", "text")

	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("#if a\nA\n#endif\n"), 0o644))

	out, _, err := execCheck(t, good)
	require.NoError(t, err)
	assert.Contains(t, out, good+": ok")
}

func TestCheckCommand_MixedResults(t *testing.T) {
	t.Setenv("PPDPY_OUTPUT", "text")

	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("plain text\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("#if a\nno endif\n"), 0o644))

	out, errOut, err := execCheck(t, good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed to compile")
	assert.Contains(t, out, good+": ok")
	assert.Contains(t, errOut, bad+":")
	assert.NotContains(t, out, "Usage:")
	assert.NotContains(t, errOut, "Usage:")
}

func TestCheckCommand_JSON(t *testing.T) {
	t.Setenv("PPDPY_OUTPUT", "json")

	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("plain text\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("#elif a\n"), 0o644))

	out, _, err := execCheck(t, good, bad)
	require.Error(t, err)

	var results []checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, checkResult{File: good, OK: true}, results[0])
	assert.Equal(t, bad, results[1].File)
	assert.False(t, results[1].OK)
	assert.NotEmpty(t, results[1].Error)
}

func TestCheckCommand_MissingFile(t *testing.T) {
	t.Setenv("PPDPY_OUTPUT", "text")

	_, _, err := execCheck(t, filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}
