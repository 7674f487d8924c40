// Package ingest routes document imports to the right strategy based
// on file extension: vision-LLM transcription for PDFs and images,
// structured extraction for office formats, raw text read for
// Markdown and plain text. The three extension sets are disjoint; an
// extension outside all of them is a hard error, never a silent
// fallback.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/gaurav-prasanna/markconvert/core"
)

// The three disjoint extension sets.
var (
	visionExts     = map[string]bool{"pdf": true, "png": true, "jpg": true, "jpeg": true}
	structuredExts = map[string]bool{"docx": true, "doc": true, "pptx": true, "ppt": true, "html": true, "htm": true}
	plainExts      = map[string]bool{"txt": true, "md": true}
)

// VisionPipeline is the vision-LLM import strategy.
type VisionPipeline interface {
	ProcessPDF(ctx context.Context, path string) (string, error)
	ProcessImage(ctx context.Context, path string) (string, error)
}

// Router imports documents by dispatching on file extension.
type Router struct {
	vision    VisionPipeline
	extractor core.Extractor
}

// NewRouter creates a Router with the given strategies.
func NewRouter(vision VisionPipeline, extractor core.Extractor) *Router {
	return &Router{vision: vision, extractor: extractor}
}

// SupportedExtensions returns every recognized extension, sorted.
func SupportedExtensions() []string {
	var exts []string
	for _, set := range []map[string]bool{visionExts, structuredExts, plainExts} {
		for ext := range set {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Import converts the file at path into Markdown. Internal failures
// are re-signaled as a single ImportError wrapping the original cause
// and the file path; there is no partial-success result.
func (r *Router) Import(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	var markdown string
	var err error
	switch {
	case visionExts[ext]:
		if ext == "pdf" {
			markdown, err = r.vision.ProcessPDF(ctx, path)
		} else {
			markdown, err = r.vision.ProcessImage(ctx, path)
		}
	case structuredExts[ext]:
		markdown, err = r.extractor.ExtractMarkdown(ctx, path)
	case plainExts[ext]:
		markdown, err = readPlainText(path)
	default:
		return "", &core.UnsupportedFormatError{Extension: ext, Supported: SupportedExtensions()}
	}

	if err != nil {
		return "", &core.ImportError{Path: path, Err: err}
	}
	return markdown, nil
}

// readPlainText reads a .txt/.md file as UTF-8, falling back to
// Latin-1 for the whole document when the bytes are not valid UTF-8.
func readPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return string(decoded), nil
}
