// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		baseDir string
		want    string
	}{
		{
			name:    "absolute base",
			baseDir: filepath.Join(string(filepath.Separator), "opt", "issuegen", "bin"),
			want:    filepath.Join(string(filepath.Separator), "opt", "issuegen", "docs", "oris-2.0-kernel-issues.csv"),
		},
		{
			name:    "relative base",
			baseDir: filepath.Join("build", "bin"),
			want:    filepath.Join("build", "docs", "oris-2.0-kernel-issues.csv"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.baseDir))
		})
	}
}

func TestDefaultOutputPathIgnoresWorkingDir(t *testing.T) {
	first, err := DefaultOutputPath()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	second, err := DefaultOutputPath()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, filepath.IsAbs(first))
	assert.Equal(t, "oris-2.0-kernel-issues.csv", filepath.Base(first))
	assert.Equal(t, "docs", filepath.Base(filepath.Dir(first)))
}
