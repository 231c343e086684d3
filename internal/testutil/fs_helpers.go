// Package testutil provides helpers shared across plancheck tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDataFile writes content to a data file in a temp directory and
// returns its path. Cleanup happens via t.TempDir.
func WriteDataFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return path
}

// ReadFile reads a file, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
