// Package vision — per-page transcription pipeline.
// A PDF is rasterized once, then every page runs through classify →
// transcribe (document) or describe (photo) strictly in order. A fixed
// cooldown between successive pages lets the backend recover capacity;
// this is a deliberate throttle, not an optimization target.
package vision

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gaurav-prasanna/markconvert/core"
	"github.com/gaurav-prasanna/markconvert/core/raster"
)

// DefaultPageCooldown is the interval observed between successive pages.
const DefaultPageCooldown = 2 * time.Second

// Pipeline converts PDFs and single images to Markdown via the vision
// backend.
type Pipeline struct {
	backend     core.Backend
	rasterizer  *raster.Rasterizer
	visionModel string
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewPipeline creates a Pipeline. A zero cooldown falls back to the
// default; pass a negative cooldown only when the backend is known to
// have no capacity constraint.
func NewPipeline(backend core.Backend, r *raster.Rasterizer, visionModel string, cooldown time.Duration, logger *slog.Logger) *Pipeline {
	if r == nil {
		r = raster.New()
	}
	if cooldown == 0 {
		cooldown = DefaultPageCooldown
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cooldown > 0 {
		limiter = rate.NewLimiter(rate.Every(cooldown), 1)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		backend:     backend,
		rasterizer:  r,
		visionModel: visionModel,
		limiter:     limiter,
		logger:      logger,
	}
}

// ProcessPDF rasterizes every page, transcribes or describes each one
// in order, and stitches the results with page separators. The
// temporary image workspace is removed on every exit path.
func (p *Pipeline) ProcessPDF(ctx context.Context, pdfPath string) (string, error) {
	workDir, err := os.MkdirTemp("", "pdf_images_")
	if err != nil {
		return "", fmt.Errorf("creating workspace: %w", err)
	}
	defer os.RemoveAll(workDir)

	pages, err := p.rasterizer.ConvertAll(pdfPath, workDir)
	if err != nil {
		return "", fmt.Errorf("rasterizing %s: %w", pdfPath, err)
	}

	return p.ProcessPages(ctx, pages)
}

// ProcessPages runs the classify/transcribe/describe loop over already
// rasterized page images, in order, and stitches the results. A "---"
// rule and "## Page N" heading precede every page after the first.
func (p *Pipeline) ProcessPages(ctx context.Context, pages []string) (string, error) {
	var sb strings.Builder
	for i, pagePath := range pages {
		// Cooldown between successive pages; page 1 starts immediately.
		if err := p.limiter.Wait(ctx); err != nil {
			return "", err
		}

		p.logger.Debug("processing page", "page", i+1, "total", len(pages))

		pageMD, err := p.processOne(ctx, pagePath)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}

		if i > 0 {
			fmt.Fprintf(&sb, "\n\n---\n\n## Page %d\n\n", i+1)
		}
		sb.WriteString(pageMD)
	}

	return StripCodeFences(sb.String()), nil
}

// ProcessImage is the one-page version of the pipeline for standalone
// images: classify, transcribe or describe, clean.
func (p *Pipeline) ProcessImage(ctx context.Context, imagePath string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}
	result, err := p.processOne(ctx, imagePath)
	if err != nil {
		return "", err
	}
	return StripCodeFences(result), nil
}

// processOne classifies one image and routes it to transcription or
// description.
func (p *Pipeline) processOne(ctx context.Context, imagePath string) (string, error) {
	imageB64, err := EncodeImage(imagePath)
	if err != nil {
		return "", err
	}

	label, err := ClassifyContent(ctx, p.backend, p.visionModel, imageB64)
	if err != nil {
		return "", fmt.Errorf("classifying content: %w", err)
	}

	if label == core.ContentPhoto {
		description, err := p.backend.Generate(ctx, core.GenerateRequest{
			Model:       p.visionModel,
			Prompt:      describePrompt,
			System:      describeSystem,
			ImageBase64: imageB64,
			Temperature: 0.3,
		})
		if err != nil {
			return "", fmt.Errorf("describing image: %w", err)
		}
		return "# Image Description\n\n" + description, nil
	}

	transcription, err := p.backend.Generate(ctx, core.GenerateRequest{
		Model:       p.visionModel,
		Prompt:      transcribePrompt,
		System:      transcribeSystem,
		ImageBase64: imageB64,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("transcribing document: %w", err)
	}
	return transcription, nil
}
