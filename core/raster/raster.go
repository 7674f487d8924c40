// Package raster converts PDF pages into bounded-size raster images.
// Rendering goes through MuPDF (go-fitz); pages larger than the
// configured maximum dimension are downscaled with a high-quality
// resampling filter before encoding.
package raster

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/image/draw"
)

const (
	// DefaultDPI is a good balance of fidelity and image size.
	DefaultDPI = 150
	// DefaultJPEGQuality keeps files small without visible artifacts.
	DefaultJPEGQuality = 85
	// DefaultMaxDimension bounds the larger image side in pixels.
	DefaultMaxDimension = 2048

	// FormatJPEG and FormatPNG are the supported output formats.
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
)

// Rasterizer renders PDF pages to image files.
type Rasterizer struct {
	// DPI applied against the PDF's native 72-DPI coordinate space.
	DPI int
	// Format is "jpeg" or "png".
	Format string
	// JPEGQuality is 1-100, used for JPEG output only.
	JPEGQuality int
	// MaxDimension downscales any page whose rendered width or height
	// exceeds it, preserving aspect ratio.
	MaxDimension int
}

// New creates a Rasterizer with the default settings.
func New() *Rasterizer {
	return &Rasterizer{
		DPI:          DefaultDPI,
		Format:       FormatJPEG,
		JPEGQuality:  DefaultJPEGQuality,
		MaxDimension: DefaultMaxDimension,
	}
}

// ext returns the filename extension for the configured format.
func (r *Rasterizer) ext() string {
	if r.Format == FormatPNG {
		return "png"
	}
	return "jpg"
}

// PageCount returns the number of pages in the PDF.
func (r *Rasterizer) PageCount(pdfPath string) (int, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// ConvertAll renders every page of the PDF into outDir, one image per
// page in page order. Filenames are 1-indexed and zero-padded to four
// digits (page_0001.jpg). It returns the image paths in page order.
func (r *Rasterizer) ConvertAll(pdfPath, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer doc.Close()

	var paths []string
	for page := 0; page < doc.NumPage(); page++ {
		outPath := filepath.Join(outDir, fmt.Sprintf("page_%04d.%s", page+1, r.ext()))
		if err := r.renderPage(doc, page, outPath); err != nil {
			return nil, err
		}
		paths = append(paths, outPath)
	}
	return paths, nil
}

// ConvertPage renders a single page (0-indexed) to outPath. A page
// index at or beyond the page count is an out-of-range error.
func (r *Rasterizer) ConvertPage(pdfPath string, page int, outPath string) error {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		return fmt.Errorf("page %d out of range (total pages: %d)", page, doc.NumPage())
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return r.renderPage(doc, page, outPath)
}

// renderPage rasterizes one page, downscales if needed, and encodes it.
func (r *Rasterizer) renderPage(doc *fitz.Document, page int, outPath string) error {
	img, err := doc.ImageDPI(page, float64(r.DPI))
	if err != nil {
		return fmt.Errorf("rendering page %d: %w", page+1, err)
	}

	scaled := Downscale(img, r.MaxDimension)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if r.Format == FormatPNG {
		err = png.Encode(f, scaled)
	} else {
		err = jpeg.Encode(f, scaled, &jpeg.Options{Quality: r.JPEGQuality})
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}
	return nil
}

// Downscale resizes img so its larger dimension equals maxDim if it
// exceeds it, preserving aspect ratio. Smaller images pass through.
func Downscale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	larger := w
	if h > larger {
		larger = h
	}
	if maxDim <= 0 || larger <= maxDim {
		return img
	}

	ratio := float64(maxDim) / float64(larger)
	nw := int(float64(w) * ratio)
	nh := int(float64(h) * ratio)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
