// Package config loads the process configuration. Settings are read
// once at startup (environment, optional YAML file) into an immutable
// Config that is passed explicitly to constructors; there is no
// process-wide singleton.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/markconvert/core/raster"
	"github.com/gaurav-prasanna/markconvert/core/vision"
)

// Config is the read-only runtime configuration.
type Config struct {
	// BackendURL is the Ollama-compatible vision/text backend.
	BackendURL string `mapstructure:"backend_url"`
	// TextModel is the default model for text-only generation.
	TextModel string `mapstructure:"text_model"`
	// VisionModel is the model for image-conditioned generation.
	VisionModel string `mapstructure:"vision_model"`

	// ExtractorURL points at the external structured-extraction
	// service. Empty means the in-process extractor.
	ExtractorURL string `mapstructure:"extractor_url"`
	// RenderServiceURL points at the external HTML-to-PDF renderer.
	// Empty means the direct PDF path.
	RenderServiceURL string `mapstructure:"render_service_url"`

	// PageCooldown is the delay between successive vision pages.
	PageCooldown time.Duration `mapstructure:"page_cooldown"`

	// Rasterizer settings.
	RasterDPI          int    `mapstructure:"raster_dpi"`
	RasterFormat       string `mapstructure:"raster_format"`
	RasterJPEGQuality  int    `mapstructure:"raster_jpeg_quality"`
	RasterMaxDimension int    `mapstructure:"raster_max_dimension"`

	// Addr is the HTTP listen address for serve mode.
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from the environment (MARKCONVERT_ prefix)
// and an optional markconvert.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MARKCONVERT")
	v.AutomaticEnv()

	v.SetDefault("backend_url", vision.DefaultBaseURL)
	v.SetDefault("text_model", vision.DefaultTextModel)
	v.SetDefault("vision_model", vision.DefaultVisionModel)
	v.SetDefault("extractor_url", "")
	v.SetDefault("render_service_url", "")
	v.SetDefault("page_cooldown", vision.DefaultPageCooldown)
	v.SetDefault("raster_dpi", raster.DefaultDPI)
	v.SetDefault("raster_format", raster.FormatJPEG)
	v.SetDefault("raster_jpeg_quality", raster.DefaultJPEGQuality)
	v.SetDefault("raster_max_dimension", raster.DefaultMaxDimension)
	v.SetDefault("addr", "127.0.0.1:5000")

	v.SetConfigName("markconvert")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return &cfg, nil
}

// Rasterizer builds a raster.Rasterizer from the configured settings.
func (c *Config) Rasterizer() *raster.Rasterizer {
	return &raster.Rasterizer{
		DPI:          c.RasterDPI,
		Format:       c.RasterFormat,
		JPEGQuality:  c.RasterJPEGQuality,
		MaxDimension: c.RasterMaxDimension,
	}
}
