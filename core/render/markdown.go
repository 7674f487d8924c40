// Package render provides the output emitters for markconvert.
// This file implements the Markdown emitter, which is a simple passthrough.
package render

// MarkdownEmitter writes Markdown as-is. It's the simplest emitter
// since Markdown is already the canonical pipeline format.
type MarkdownEmitter struct{}

// NewMarkdownEmitter creates a MarkdownEmitter.
func NewMarkdownEmitter() *MarkdownEmitter {
	return &MarkdownEmitter{}
}

// Emit returns the Markdown as raw UTF-8 bytes (passthrough).
func (e *MarkdownEmitter) Emit(markdown string) ([]byte, error) {
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (e *MarkdownEmitter) Extension() string {
	return ".md"
}
