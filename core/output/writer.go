// Package output handles file naming and writing for markconvert
// outputs. Filenames are derived from the input document's base name
// plus the emitter's extension (report.pdf → report.md).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes converted output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores converted data next to the input's name.
// Example: /docs/report.pdf with ext ".md" → <outputDir>/report.md.
func (w *Writer) Write(inputPath string, data []byte, ext string) (string, error) {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = "dokument"
	}
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
