// Package vision — content classification.
package vision

import (
	"context"
	"strings"

	"github.com/gaurav-prasanna/markconvert/core"
)

// ClassifyContent asks the backend whether an image is a document or a
// photo. Classification runs at temperature 0 so the answer is
// deterministic. An ambiguous reply defaults to document: transcription
// is the safer path for mixed content.
func ClassifyContent(ctx context.Context, backend core.Backend, model, imageB64 string) (core.ContentLabel, error) {
	reply, err := backend.Generate(ctx, core.GenerateRequest{
		Model:       model,
		Prompt:      classifyPrompt,
		ImageBase64: imageB64,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return ParseContentLabel(reply), nil
}

// ParseContentLabel extracts the label from a backend reply,
// case-insensitively. Neither keyword present means document.
func ParseContentLabel(reply string) core.ContentLabel {
	lower := strings.ToLower(strings.TrimSpace(reply))
	switch {
	case strings.Contains(lower, "document"):
		return core.ContentDocument
	case strings.Contains(lower, "photo"):
		return core.ContentPhoto
	default:
		return core.ContentDocument
	}
}
