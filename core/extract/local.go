// Package extract — local extractor.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Local extracts structured documents in-process. It covers the modern
// formats; legacy binary .doc/.ppt need the external extraction service.
type Local struct{}

// NewLocal creates a Local extractor.
func NewLocal() *Local {
	return &Local{}
}

// ExtractMarkdown converts the file at path into Markdown.
func (l *Local) ExtractMarkdown(_ context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return extractDocx(path)
	case ".pptx":
		return extractPptx(path)
	case ".html", ".htm":
		return extractHTML(path)
	case ".doc", ".ppt":
		return "", fmt.Errorf("legacy format %s requires the external extraction service", filepath.Ext(path))
	default:
		return "", fmt.Errorf("no local parser for %s", filepath.Ext(path))
	}
}
