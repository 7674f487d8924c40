// Package core defines the pipeline interfaces for markconvert.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// ContentLabel classifies what a rasterized page or uploaded image contains.
type ContentLabel string

const (
	// ContentDocument marks pages with text, tables, charts, or diagrams.
	ContentDocument ContentLabel = "document"
	// ContentPhoto marks photographs, artwork, and scenes without
	// significant text content.
	ContentPhoto ContentLabel = "photo"
)

// GenerateRequest is one call to the vision/text backend.
// ImageBase64 is empty for text-only generation.
type GenerateRequest struct {
	Model       string
	Prompt      string
	System      string
	ImageBase64 string
	Temperature float64
}

// Backend generates text, optionally conditioned on an input image.
// A non-2xx backend response surfaces as an error.
type Backend interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Importer converts a document file into Markdown.
type Importer interface {
	Import(ctx context.Context, path string) (string, error)
}

// Extractor converts a structured office document (docx, pptx, html, ...)
// into Markdown without rasterization.
type Extractor interface {
	ExtractMarkdown(ctx context.Context, path string) (string, error)
}

// Emitter converts Markdown into a target output format.
type Emitter interface {
	Emit(markdown string) ([]byte, error)
	// Extension returns the file extension for this emitter (e.g. ".rtf", ".pdf").
	Extension() string
}

// HTMLRenderer turns a full HTML document into PDF bytes. The actual
// rendering engine is an external collaborator.
type HTMLRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
