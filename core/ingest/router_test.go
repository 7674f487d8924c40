package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/markconvert/core"
)

// fakeVision implements VisionPipeline with canned output.
type fakeVision struct {
	pdfOut   string
	imageOut string
	err      error
	pdfCalls int
	imgCalls int
}

func (f *fakeVision) ProcessPDF(_ context.Context, _ string) (string, error) {
	f.pdfCalls++
	return f.pdfOut, f.err
}

func (f *fakeVision) ProcessImage(_ context.Context, _ string) (string, error) {
	f.imgCalls++
	return f.imageOut, f.err
}

// fakeExtractor implements core.Extractor with canned output.
type fakeExtractor struct {
	out   string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractMarkdown(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.out, f.err
}

func TestExtensionSetsAreDisjoint(t *testing.T) {
	seen := map[string]int{}
	for _, set := range []map[string]bool{visionExts, structuredExts, plainExts} {
		for ext := range set {
			seen[ext]++
		}
	}
	for ext, n := range seen {
		if n > 1 {
			t.Errorf("extension %q appears in %d sets", ext, n)
		}
	}
}

func TestImportDispatch(t *testing.T) {
	vision := &fakeVision{pdfOut: "from pdf", imageOut: "from image"}
	extractor := &fakeExtractor{out: "from extractor"}
	r := NewRouter(vision, extractor)
	ctx := context.Background()

	out, err := r.Import(ctx, "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "from pdf", out)

	out, err = r.Import(ctx, "scan.JPG")
	require.NoError(t, err)
	assert.Equal(t, "from image", out)

	out, err = r.Import(ctx, "slides.pptx")
	require.NoError(t, err)
	assert.Equal(t, "from extractor", out)

	assert.Equal(t, 1, vision.pdfCalls)
	assert.Equal(t, 1, vision.imgCalls)
	assert.Equal(t, 1, extractor.calls)
}

func TestImportUnsupportedExtension(t *testing.T) {
	r := NewRouter(&fakeVision{}, &fakeExtractor{})

	_, err := r.Import(context.Background(), "data.xyz")
	require.Error(t, err)

	var unsupported *core.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "xyz", unsupported.Extension)
	assert.Contains(t, unsupported.Supported, "pdf")
	assert.Contains(t, unsupported.Supported, "txt")

	// Never wrapped as an internal import failure.
	var imp *core.ImportError
	assert.False(t, errors.As(err, &imp))
}

func TestImportWrapsInternalFailures(t *testing.T) {
	cause := errors.New("backend down")
	r := NewRouter(&fakeVision{err: cause}, &fakeExtractor{})

	_, err := r.Import(context.Background(), "scan.png")
	require.Error(t, err)

	var imp *core.ImportError
	require.ErrorAs(t, err, &imp)
	assert.Equal(t, "scan.png", imp.Path)
	assert.ErrorIs(t, err, cause)
}

func TestImportPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# Notes\nplain"), 0644))

	r := NewRouter(&fakeVision{}, &fakeExtractor{})
	out, err := r.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "# Notes\nplain", out)
}

func TestImportLatin1Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.txt")
	// 0xE9 is é in Latin-1 and invalid as standalone UTF-8.
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0644))

	r := NewRouter(&fakeVision{}, &fakeExtractor{})
	out, err := r.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "café", out)
}
