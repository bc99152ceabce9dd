package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/algoprovider/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ListsCatalogue(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scripts := t.TempDir()
	yamlScript := "id: dissolve_all\nname: Dissolve all\ngroup: Vector geometry\n"
	require.NoError(t, os.WriteFile(filepath.Join(scripts, "dissolve.yaml"), []byte(yamlScript), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(scripts, "broken.yaml"), []byte("name: [unterminated"), 0o644))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-output", "json", "-plotting", "off", scripts})

	// --- Assert ---
	require.NoError(t, err)

	var listings []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &listings), "stdout must hold only the listing")
	require.NotEmpty(t, listings)
	last := listings[len(listings)-1]
	assert.Equal(t, "qgis:dissolve_all", last["id"])
	assert.Equal(t, "script", last["channel"])
	assert.Equal(t, false, last["editable"])
	assert.Contains(t, logs.String(), "Skipping malformed script definition.")
}
