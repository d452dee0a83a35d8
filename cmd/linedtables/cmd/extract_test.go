package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefsFile(t *testing.T) string {
	t.Helper()

	return writeDefsFileWith(t, `tables:
  - name: waypoints
    heading_colors: ["#cce5ff"]
`)
}

func writeDefsFileWith(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExtractCommandRequiresArgs(t *testing.T) {
	_, err := executeCommand(t, "extract")
	require.Error(t, err)
}

func TestExtractCommandInvalidFormat(t *testing.T) {
	_, err := executeCommand(t, "extract", "some.pdf", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestExtractCommandNegativeStartPage(t *testing.T) {
	_, err := executeCommand(t, "extract", "some.pdf", "--format", "text", "--start-page", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start-page")
}

func TestExtractCommandMissingDefinitionFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := executeCommand(t, "extract", "some.pdf",
		"--format", "text", "--start-page", "0", "--defs", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestExtractCommandMissingPDF(t *testing.T) {
	defs := writeDefsFile(t)
	missing := filepath.Join(t.TempDir(), "nope.pdf")
	_, err := executeCommand(t, "extract", missing, "--defs", defs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.pdf")
}
