package cmdapp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/logging"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	// setupCommand rebuilds the logger from config, so command logs go to
	// the discard writer; the test logger covers pre-execute logging.
	logger := logging.NewTestLogger(t)
	return &App{
		version: "test",
		config:  &Config{LogOutput: "discard"},
		logger:  logger.Logger,
	}
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	rootCmd := app.createRootCommand()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const catalogFixture = `- source_name: foo
  version: "1.0.0"
- source_name: foo
  version: "1.2.0"
- source_name: foo
  version: "2.0.0"
`

func TestMatchCommand(t *testing.T) {
	app := newTestApp(t)
	catalogPath := writeFixture(t, "catalog.yaml", catalogFixture)

	out, err := runCommand(t, app, "match", "foo", "1.1.0", "--catalog", catalogPath, "--format", "json")
	require.NoError(t, err)

	var result struct {
		Name         string  `json:"name"`
		Version      string  `json:"version"`
		PackageScore int     `json:"package_score"`
		VersionScore float64 `json:"version_score"`
		Candidates   []struct {
			Version     string `json:"version"`
			Distance    int    `json:"distance"`
			IsRequested bool   `json:"is_requested"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "foo", result.Name)
	assert.Equal(t, "1.2.0", result.Version)
	assert.Equal(t, 100, result.PackageScore)
	assert.Len(t, result.Candidates, 4)
}

func TestMatchCommandNoCandidates(t *testing.T) {
	app := newTestApp(t)
	catalogPath := writeFixture(t, "catalog.yaml", catalogFixture)

	_, err := runCommand(t, app, "match", "unrelated-package", "1.0", "--catalog", catalogPath)
	require.Error(t, err)
}

func TestMatchCommandRejectsEmptyVersion(t *testing.T) {
	app := newTestApp(t)
	catalogPath := writeFixture(t, "catalog.yaml", catalogFixture)

	_, err := runCommand(t, app, "match", "foo", "  ", "--catalog", catalogPath)
	require.Error(t, err)
}

const scanFixture = `{
  "headers": [
    {"tool_name": "scancode-toolkit", "tool_version": "21.8.4"}
  ],
  "files": [
    {
      "path": "pkg-1.0/src/main.c",
      "type": "file",
      "sha1": "aa01",
      "licenses": [{"key": "gpl-2.0"}],
      "license_expressions": ["gpl-2.0"],
      "copyrights": [{"copyright": "Copyright 2019 Foo"}]
    }
  ]
}
`

func TestCompareCommand(t *testing.T) {
	app := newTestApp(t)
	oldPath := writeFixture(t, "old.json", scanFixture)
	newPath := writeFixture(t, "new.json", scanFixture)

	out, err := runCommand(t, app, "compare", oldPath, newPath, "--format", "json")
	require.NoError(t, err)

	var result struct {
		Stats     map[string]int `json:"stats"`
		Proximity float64        `json:"proximity"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, 1, result.Stats["same_files"])
	assert.InDelta(t, 1.0, result.Proximity, 1e-9)
}

func TestUnsupportedOutputFormat(t *testing.T) {
	app := newTestApp(t)
	catalogPath := writeFixture(t, "catalog.yaml", catalogFixture)

	_, err := runCommand(t, app, "match", "foo", "1.1.0", "--catalog", catalogPath, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestVersionCommand(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "solda test")
}
