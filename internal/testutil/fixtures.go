// Package testutil provides test fixtures for unit tests.
//
// Fragment-tree fixtures are expressed as txtar archives so a whole
// multi-file spec layout stays readable inside one test source string.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// ExtractTxtar parses a txtar archive and writes its files under a fresh
// temporary directory, returning the directory path. Nested directories in
// archive file names are created as needed.
// The directory is automatically cleaned up when the test completes.
func ExtractTxtar(t *testing.T, archive string) string {
	t.Helper()

	dir := t.TempDir()
	ar := txtar.Parse([]byte(archive))
	if len(ar.Files) == 0 {
		t.Fatalf("txtar archive contains no files")
	}

	for _, f := range ar.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("Failed to create fixture directory for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(path, f.Data, 0o600); err != nil {
			t.Fatalf("Failed to write fixture file %s: %v", f.Name, err)
		}
	}

	return dir
}

// WriteFile writes content to name under dir, creating parent directories.
// Returns the full path to the written file.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write file %s: %v", name, err)
	}
	return path
}
