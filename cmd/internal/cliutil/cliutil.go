// Package cliutil provides shared helpers for the duplicates
// command-line tools.
package cliutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetOutput opens the output file or returns stdout.
func GetOutput(outputFile string) (*os.File, func(), error) {
	if outputFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// WriteModuleFile writes one module's text under dir, creating parent
// directories as needed. The module path must be slash-separated and
// relative.
func WriteModuleFile(dir, modulePath, text string) error {
	target := filepath.Join(dir, filepath.FromSlash(modulePath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, []byte(text), 0o644)
}

// PrintError writes a formatted error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
