package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/cvfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"cvfind"}, args...))
	return stdout.String(), err
}

func findCommand(t *testing.T, name string) *cli.Command {
	t.Helper()
	for _, cmd := range newApp().Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %s not found", name)
	return nil
}

func findStringFlag(cmd *cli.Command, name string) *cli.StringFlag {
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
			return f
		}
	}
	return nil
}

func TestCommandFlags(t *testing.T) {
	t.Run("db reads CVFIND_DB", func(t *testing.T) {
		for _, name := range []string{"serve", "search", "query", "import", "upload", "list"} {
			flag := findStringFlag(findCommand(t, name), "db")
			require.NotNil(t, flag, name)
			assert.Equal(t, []string{"CVFIND_DB"}, flag.EnvVars, name)
		}
	})

	t.Run("import requires db", func(t *testing.T) {
		flag := findStringFlag(findCommand(t, "import"), "db")
		assert.True(t, flag.Required)

		_, err := runApp(t, "import", "cvs.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("serve defaults", func(t *testing.T) {
		cmd := findCommand(t, "serve")
		addr := findStringFlag(cmd, "addr")
		require.NotNil(t, addr)
		assert.Equal(t, ":8080", addr.Value)
		assert.Equal(t, []string{"CVFIND_ADDR"}, addr.EnvVars)

		host := findStringFlag(cmd, "parser-host")
		require.NotNil(t, host)
		assert.Equal(t, "http://localhost:11434/v1", host.Value)
		assert.Equal(t, []string{"CVFIND_PARSER_HOST"}, host.EnvVars)

		model := findStringFlag(cmd, "parser-model")
		require.NotNil(t, model)
		assert.Equal(t, []string{"CVFIND_PARSER_MODEL"}, model.EnvVars)

		token := findStringFlag(cmd, "parser-token")
		require.NotNil(t, token)
		assert.Empty(t, token.Value)
		assert.Equal(t, []string{"CVFIND_PARSER_TOKEN"}, token.EnvVars)
	})
}

func TestSetupLogger(t *testing.T) {
	_, err := runApp(t, "--log-level", "verbose", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, err = runApp(t, "--log-level", "ERROR", "list")
	require.NoError(t, err)
}

func TestSearchCommand(t *testing.T) {
	t.Setenv("CVFIND_DB", "")

	out, err := runApp(t, "--log-level", "error", "search", "teaching")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Found 2 hits", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1. Sarah Johnson"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2. John Smith"), lines[2])

	out, err = runApp(t, "--log-level", "error", "search", "--scope", "skills", "--json", "python")
	require.NoError(t, err)
	var results []*core.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Sarah Johnson", results[0].Record.Name)

	out, err = runApp(t, "--log-level", "error", "search", "zzqx")
	require.NoError(t, err)
	assert.Equal(t, "No matching CVs\n", out)

	_, err = runApp(t, "--log-level", "error", "search")
	assert.Error(t, err)
}

func TestSearchCommand_Explain(t *testing.T) {
	t.Setenv("CVFIND_DB", "")

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	require.NoError(t, app.Run([]string{"cvfind", "--log-level", "error", "search", "--explain", "teaching"}))

	assert.True(t, strings.HasPrefix(stdout.String(), "Found 2 hits"))
	assert.Contains(t, stderr.String(), "search started")
	assert.Contains(t, stderr.String(), "name=\"Sarah Johnson\"")
	assert.Contains(t, stderr.String(), "results=2")
}

func TestQueryCommand(t *testing.T) {
	t.Setenv("CVFIND_DB", "")

	out, err := runApp(t, "--log-level", "error", "query", "List all candidates with software experience")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Michael Chen - Senior Project Manager at Global Software Solutions")

	_, err = runApp(t, "--log-level", "error", "query", "  ")
	assert.Error(t, err)
}

func TestImportAndList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	file := filepath.Join(t.TempDir(), "cvs.json")
	require.NoError(t, os.WriteFile(file, []byte(`[
		{"id": "a", "name": "Ada Lovelace", "email": "ada@example.com"},
		{"id": "b", "name": "Grace Hopper", "email": "grace@example.com"}
	]`), 0o600))

	out, err := runApp(t, "--log-level", "error", "import", "--db", dir, "--retry-delay", "1ms", file)
	require.NoError(t, err)
	assert.Contains(t, out, "2 imported, 0 skipped")

	out, err = runApp(t, "--log-level", "error", "import", "--db", dir, file)
	require.NoError(t, err)
	assert.Contains(t, out, "0 imported, 2 skipped")

	out, err = runApp(t, "--log-level", "error", "list", "--db", dir)
	require.NoError(t, err)
	assert.Equal(t, "a\tAda Lovelace\tada@example.com\nb\tGrace Hopper\tgrace@example.com\n", out)

	_, err = runApp(t, "--log-level", "error", "import", "--db", dir, "--batch-size", "0", file)
	assert.Error(t, err)
}

func TestUploadCommand_MockParser(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	out, err := runApp(t, "--log-level", "error", "upload", "--db", dir, "--mock-parser", path)
	require.NoError(t, err)
	fields := strings.Split(strings.TrimSpace(out), "\t")
	require.Len(t, fields, 2)
	assert.NotEmpty(t, fields[0])
	assert.Equal(t, "John Doe", fields[1])

	out, err = runApp(t, "--log-level", "error", "list", "--db", dir)
	require.NoError(t, err)
	assert.Equal(t, fields[0]+"\tJohn Doe\tjohn.doe@example.com\n", out)

	_, err = runApp(t, "--log-level", "error", "upload", "--mock-parser")
	assert.Error(t, err)
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe"), 0o600))

	doc, err := readDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", doc.Name)
	assert.Equal(t, "application/pdf", doc.MimeType)
	assert.True(t, strings.HasPrefix(doc.URI, "file://"))
	assert.Equal(t, []byte("Jane Doe"), doc.Content)

	_, err = readDocument(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
