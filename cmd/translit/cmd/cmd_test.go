package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestBuildCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.txt")
	require.NoError(t, os.WriteFile(path, []byte(":: [a-z] ;\n# comment\na <> b ;\n"), 0o644))

	out := run(t, "build", "-f", path, "--bidirectional", "--log-level", "error")
	assert.Contains(t, out, "## forward")
	assert.Contains(t, out, "## backward")
	assert.Contains(t, out, "a <> b ;")
}

func TestImportListCompile(t *testing.T) {
	src := t.TempDir()
	dir := filepath.Join(src, "shared", "transforms")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Any-Test.yml"), []byte(`transforms:
  - direction: both
    rules:
      - "::[a-z] ;"
      - "a > b ;"
`), 0o644))
	dbURL := "sqlite://" + filepath.Join(t.TempDir(), "translit.db")

	run(t, "migrate", "--db-url", dbURL, "--log-level", "error")
	out := run(t, "import", src, "--db-url", dbURL, "--log-level", "error")
	assert.Contains(t, out, "Any-Test")

	out = run(t, "list", "--db-url", dbURL, "--log-level", "error")
	assert.Contains(t, out, "Any-Test")
	assert.Contains(t, out, "both")

	out = run(t, "compile", "Any-Test", "--db-url", dbURL, "--log-level", "error")
	assert.True(t, strings.Contains(out, "# group Any-Test (both)"), out)
	assert.Contains(t, out, "## backward")

	out = run(t, "list", "--resource-dir", src, "--log-level", "error")
	assert.Contains(t, out, "Any-Test")
}
