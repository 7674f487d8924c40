// Package extract — external extraction service client.
// The service accepts a document upload and replies with Markdown text.
// Failures are opaque extraction errors; there is no retry.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// serviceTimeout is generous: structured extraction of a large office
// document is slow.
const serviceTimeout = 300 * time.Second

// Service calls an external structured-extraction collaborator over HTTP.
type Service struct {
	baseURL string
	client  *http.Client
}

// NewService creates a Service client for the given base URL.
func NewService(baseURL string) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: serviceTimeout},
	}
}

// ExtractMarkdown uploads the file and returns the extracted Markdown.
func (s *Service) ExtractMarkdown(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalizing upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/extract", &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling extraction service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("extraction service returned %d: %s", resp.StatusCode, string(slurp))
	}

	markdown, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading extraction response: %w", err)
	}
	return string(markdown), nil
}
