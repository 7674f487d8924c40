// Package cmd — component wiring.
// Both commands assemble the same pipeline from configuration: the
// vision backend, the structured extractor, the import router, and the
// output emitters.
package cmd

import (
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/markconvert/config"
	"github.com/gaurav-prasanna/markconvert/core"
	"github.com/gaurav-prasanna/markconvert/core/extract"
	"github.com/gaurav-prasanna/markconvert/core/ingest"
	"github.com/gaurav-prasanna/markconvert/core/render"
	"github.com/gaurav-prasanna/markconvert/core/vision"
)

// newLogger builds the process logger. Text output to stderr keeps the
// CLI's stdout clean for results.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// buildImporter assembles the import router from configuration.
func buildImporter(cfg *config.Config, logger *slog.Logger) core.Importer {
	backend := vision.NewClient(cfg.BackendURL, cfg.TextModel, cfg.VisionModel)
	pipeline := vision.NewPipeline(backend, cfg.Rasterizer(), cfg.VisionModel, cfg.PageCooldown, logger)

	var extractor core.Extractor
	if cfg.ExtractorURL != "" {
		extractor = extract.NewService(cfg.ExtractorURL)
	} else {
		extractor = extract.NewLocal()
	}

	return ingest.NewRouter(pipeline, extractor)
}

// buildEmitters assembles the export emitters keyed by format name.
func buildEmitters(cfg *config.Config) map[string]core.Emitter {
	var htmlRenderer core.HTMLRenderer
	if cfg.RenderServiceURL != "" {
		htmlRenderer = render.NewRenderService(cfg.RenderServiceURL)
	}

	return map[string]core.Emitter{
		"markdown": render.NewMarkdownEmitter(),
		"docx":     render.NewDocxEmitter(),
		"pdf":      render.NewPDFEmitter(htmlRenderer),
		"rtf":      render.NewRTFEmitter(),
	}
}
