// Package vision orchestrates the vision-LLM import path: backend
// client, content classification, and the per-page transcription
// pipeline. The backend is an Ollama-compatible generate API reached
// over HTTP.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/markconvert/core"
)

const (
	// DefaultBaseURL is the local Ollama endpoint.
	DefaultBaseURL = "http://localhost:11434"
	// DefaultTextModel handles text-only generation.
	DefaultTextModel = "gemma3:27b"
	// DefaultVisionModel handles image-conditioned generation.
	DefaultVisionModel = "qwen2.5vl:32b"

	// generateTimeout is generous: vision transcription of a dense page
	// can take minutes on local hardware. No automatic retry.
	generateTimeout = 300 * time.Second
)

// Client calls an Ollama-compatible /api/generate endpoint. It is
// read-only after construction and safe to share across conversions.
type Client struct {
	baseURL     string
	visionModel string
	textModel   string
	client      *http.Client
}

// NewClient creates a Client. Empty arguments fall back to defaults.
func NewClient(baseURL, textModel, visionModel string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if textModel == "" {
		textModel = DefaultTextModel
	}
	if visionModel == "" {
		visionModel = DefaultVisionModel
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		textModel:   textModel,
		visionModel: visionModel,
		client:      &http.Client{Timeout: generateTimeout},
	}
}

// TextModel returns the default model for text-only generation.
func (c *Client) TextModel() string { return c.textModel }

// VisionModel returns the default model for image-conditioned generation.
func (c *Client) VisionModel() string { return c.visionModel }

// generateRequest is the request body for the Ollama generate API.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Images  []string        `json:"images,omitempty"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

// generateResponse is the response body from the Ollama generate API.
type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends one generation request. The model defaults to the
// text model, or the vision model when an image is attached.
func (c *Client) Generate(ctx context.Context, req core.GenerateRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.textModel
		if req.ImageBase64 != "" {
			model = c.visionModel
		}
	}

	body := generateRequest{
		Model:   model,
		Prompt:  req.Prompt,
		System:  req.System,
		Stream:  false,
		Options: generateOptions{Temperature: req.Temperature},
	}
	if req.ImageBase64 != "" {
		body.Images = []string{req.ImageBase64}
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/generate", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(slurp))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding backend response: %w", err)
	}
	return parsed.Response, nil
}

// EncodeImage reads an image file and returns its base64 encoding.
func EncodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
