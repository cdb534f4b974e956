// Package shared provides small utility functions used across multiple
// packages in the ensime codebase.
package shared

import (
	"fmt"
	"path/filepath"
	"strings"
)

// IsArchive reports whether a file name looks like a jar-like archive.
func IsArchive(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jar", ".zip":
		return true
	default:
		return false
	}
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
