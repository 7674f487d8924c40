// Package core — error types shared across the pipeline.
// Import and export failures are wrapped at the router/emitter boundary
// so callers see a single error kind with document context attached.
package core

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError reports a file extension outside every
// recognized extension set. It is user-facing and lists what is valid.
type UnsupportedFormatError struct {
	Extension string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (supported: %s)",
		e.Extension, strings.Join(e.Supported, ", "))
}

// ImportError wraps any downstream import failure (extraction, backend,
// rasterization) together with the file that was being imported.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("importing %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// ExportError wraps an emitter-internal failure with the target format.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("exporting to %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
