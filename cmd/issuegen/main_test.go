// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootExportsCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	path := filepath.Join(dir, "docs", "oris-2.0-kernel-issues.csv")

	restore := redirectOutput(t, path)
	defer restore()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, fmt.Sprintf("Wrote 19 issues to %s\n", path), out.String())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 20)
	assert.Equal(t, []string{"title", "body", "labels", "milestone"}, rows[0])
}

func TestRootFailsWithoutDocsDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "oris-2.0-kernel-issues.csv")

	restore := redirectOutput(t, path)
	defer restore()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening output file")
}

// redirectOutput points the generator at path for the duration of a test.
func redirectOutput(t *testing.T, path string) func() {
	t.Helper()
	orig := resolveOutputPath
	resolveOutputPath = func() (string, error) { return path, nil }
	return func() { resolveOutputPath = orig }
}
