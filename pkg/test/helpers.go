// Package test provides shared mocks and filesystem helpers for tests.
package test

import (
	"testing"

	"github.com/spf13/afero"
)

// CreateTestFile writes content to path on fs, failing the test on error.
func CreateTestFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file %s: %v", path, err)
	}
}
