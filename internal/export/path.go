// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export resolves the catalog's destination path and serializes the
// catalog to a quote-all CSV file.
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	docsDir    = "docs"
	outputName = "oris-2.0-kernel-issues.csv"
)

// OutputPath returns the export destination for a generator located in
// baseDir: one directory up, then into docs/.
func OutputPath(baseDir string) string {
	return filepath.Join(baseDir, "..", docsDir, outputName)
}

// DefaultOutputPath resolves the destination relative to the running binary,
// so the result does not depend on the caller's working directory.
func DefaultOutputPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return OutputPath(filepath.Dir(exe)), nil
}
