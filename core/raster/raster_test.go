package raster

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// writeSamplePDF creates a small n-page PDF on disk and returns its path.
func writeSamplePDF(t *testing.T, n int) string {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < n; i++ {
		pdf.AddPage()
		pdf.Cell(40, 10, "sample page")
	}
	path := filepath.Join(t.TempDir(), "sample.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing sample PDF: %v", err)
	}
	return path
}

func TestDownscale(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxDim       int
		wantW, wantH int
	}{
		{"landscape over limit", 4000, 2000, 2048, 2048, 1024},
		{"portrait over limit", 1000, 4096, 2048, 500, 2048},
		{"under limit passes through", 800, 600, 2048, 800, 600},
		{"exactly at limit passes through", 2048, 100, 2048, 2048, 100},
		{"square over limit", 3000, 3000, 2048, 2048, 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Downscale(src, tt.maxDim)
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Downscale(%dx%d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.maxDim, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDownscalePreservesAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3000, 1500))
	got := Downscale(src, 1000)
	b := got.Bounds()
	if b.Dx() != 1000 {
		t.Fatalf("larger dimension = %d, want 1000", b.Dx())
	}
	// 2:1 ratio within rounding.
	if b.Dy() != 500 {
		t.Errorf("smaller dimension = %d, want 500", b.Dy())
	}
}

func TestConvertAll(t *testing.T) {
	pdfPath := writeSamplePDF(t, 2)
	outDir := filepath.Join(t.TempDir(), "pages")

	r := New()
	paths, err := r.ConvertAll(pdfPath, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d pages, want 2", len(paths))
	}

	// Filenames are 1-indexed, zero-padded to four digits, in page order.
	for i, want := range []string{"page_0001.jpg", "page_0002.jpg"} {
		if filepath.Base(paths[i]) != want {
			t.Errorf("page %d filename = %s, want %s", i+1, filepath.Base(paths[i]), want)
		}
	}

	// Each output decodes as the configured format.
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			t.Fatal(err)
		}
		_, err = jpeg.Decode(f)
		f.Close()
		if err != nil {
			t.Errorf("decoding %s: %v", p, err)
		}
	}
}

func TestPageCount(t *testing.T) {
	pdfPath := writeSamplePDF(t, 3)
	n, err := New().PageCount(pdfPath)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("PageCount = %d, want 3", n)
	}
}

func TestConvertPage(t *testing.T) {
	pdfPath := writeSamplePDF(t, 2)
	outPath := filepath.Join(t.TempDir(), "single.jpg")

	r := New()
	if err := r.ConvertPage(pdfPath, 0, outPath); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(outPath); err != nil || info.Size() == 0 {
		t.Errorf("page image not written: %v", err)
	}
}

func TestConvertPageOutOfRange(t *testing.T) {
	pdfPath := writeSamplePDF(t, 2)
	outPath := filepath.Join(t.TempDir(), "single.jpg")

	err := New().ConvertPage(pdfPath, 2, outPath)
	if err == nil {
		t.Fatal("expected out-of-range error for page index 2 of a 2-page PDF")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error = %v, want out-of-range", err)
	}
}

func TestRasterizerDefaults(t *testing.T) {
	r := New()
	if r.DPI != 150 || r.JPEGQuality != 85 || r.MaxDimension != 2048 || r.Format != FormatJPEG {
		t.Errorf("unexpected defaults: %+v", r)
	}
	if r.ext() != "jpg" {
		t.Errorf("ext() = %q, want jpg", r.ext())
	}
	r.Format = FormatPNG
	if r.ext() != "png" {
		t.Errorf("ext() = %q, want png", r.ext())
	}
}
