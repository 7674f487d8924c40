// Package render — HTML-render service client.
// The rendering engine itself is an external collaborator: it takes a
// full HTML document and returns PDF bytes.
package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// renderTimeout is generous; rendering a long document can be slow.
const renderTimeout = 120 * time.Second

// RenderService calls an external HTML-to-PDF renderer over HTTP.
type RenderService struct {
	baseURL string
	client  *http.Client
}

// NewRenderService creates a RenderService client for the given base URL.
func NewRenderService(baseURL string) *RenderService {
	return &RenderService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: renderTimeout},
	}
}

// RenderPDF posts the HTML document and returns the rendered PDF bytes.
func (s *RenderService) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/render", strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling render service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("render service returned %d: %s", resp.StatusCode, string(slurp))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading rendered PDF: %w", err)
	}
	return pdf, nil
}
