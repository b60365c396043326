package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericvoid/ppdpy/internal/cli/config"
)

func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := execRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "ppdpy "+Version)
}

func TestRootCmd_RenderWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "ppdpy.yaml", `symbols:
  - base
profiles:
  dev:
    - debug
`)
	doc := writeFile(t, dir, "doc.txt", "#if base and debug\nDEV\n#else\nPLAIN\n#endif\n")

	out, _, err := execRoot(t, "--config", cfgPath, "-o", "text", "render", doc, "--profile", "dev")
	require.NoError(t, err)
	assert.Equal(t, "DEV\n", out)

	out, _, err = execRoot(t, "--config", cfgPath, "-o", "text", "render", doc)
	require.NoError(t, err)
	assert.Equal(t, "PLAIN\n", out)
}

func TestRootCmd_PrefixFlag(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.txt", "%if a\nA\n%endif\n")

	out, _, err := execRoot(t, "--prefix", "%", "-o", "text", "render", doc, "-D", "a")
	require.NoError(t, err)
	assert.Equal(t, "A\n", out)
}

func TestRootCmd_InvalidPrefixFlag(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.txt", "text\n")

	_, _, err := execRoot(t, "--prefix", "a b", "render", doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRootCmd_CheckJSON(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.txt", "#if a\nA\n#endif\n")

	out, _, err := execRoot(t, "-o", "json", "check", doc)
	require.NoError(t, err)

	var results []struct {
		File string `json:"file"`
		OK   bool   `json:"ok"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].OK)
}

func TestRootCmd_SymbolsFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "ppdpy.yaml", `symbols:
  - alpha
profiles:
  prod:
    - optimized
`)

	out, _, err := execRoot(t, "--config", cfgPath, "-o", "json", "symbols")
	require.NoError(t, err)

	var res struct {
		Symbols  []string            `json:"symbols"`
		Profiles map[string][]string `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"alpha"}, res.Symbols)
	assert.Equal(t, []string{"optimized"}, res.Profiles["prod"])
}
