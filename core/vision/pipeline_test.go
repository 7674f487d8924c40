package vision

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/markconvert/core"
)

// fakeBackend implements core.Backend with canned replies, recording
// every request it sees.
type fakeBackend struct {
	replies  []string
	err      error
	requests []core.GenerateRequest
}

func (f *fakeBackend) Generate(_ context.Context, req core.GenerateRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

// writePageImages creates n tiny placeholder image files.
func writePageImages(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for i := 0; i < n; i++ {
		p := filepath.Join(dir, "page.jpg")
		if n > 1 {
			p = filepath.Join(dir, "page_"+string(rune('1'+i))+".jpg")
		}
		require.NoError(t, os.WriteFile(p, []byte("img"), 0644))
		paths = append(paths, p)
	}
	return paths
}

func newTestPipeline(backend core.Backend) *Pipeline {
	// Negative cooldown: no throttling in tests.
	return NewPipeline(backend, nil, "vis-model", -1, nil)
}

func TestProcessPagesStitching(t *testing.T) {
	// Three pages, each classified as document then transcribed.
	backend := &fakeBackend{replies: []string{
		"document", "page one",
		"document", "page two",
		"document", "page three",
	}}
	p := newTestPipeline(backend)

	out, err := p.ProcessPages(context.Background(), writePageImages(t, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "---"), "exactly two separators")
	assert.Contains(t, out, "## Page 2")
	assert.Contains(t, out, "## Page 3")
	assert.NotContains(t, out, "## Page 1", "no separator before page 1")
	assert.True(t, strings.HasPrefix(out, "page one"), "page 1 output leads, got %q", out)
}

func TestProcessPagesPhotoRoute(t *testing.T) {
	backend := &fakeBackend{replies: []string{"photo", "a sunset over hills"}}
	p := newTestPipeline(backend)

	out, err := p.ProcessPages(context.Background(), writePageImages(t, 1))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Image Description"), "photo pages get the description heading")
	assert.Contains(t, out, "a sunset over hills")

	// Second call must be the description prompt at its own temperature.
	require.Len(t, backend.requests, 2)
	assert.Equal(t, 0.3, backend.requests[1].Temperature)
	assert.Equal(t, describeSystem, backend.requests[1].System)
}

func TestProcessPagesStripsFenceWrapper(t *testing.T) {
	backend := &fakeBackend{replies: []string{"document", "```markdown\n# Title\ntext\n```"}}
	p := newTestPipeline(backend)

	out, err := p.ProcessPages(context.Background(), writePageImages(t, 1))
	require.NoError(t, err)
	assert.Equal(t, "# Title\ntext", out)
}

func TestProcessPagesBackendFailureStopsDocument(t *testing.T) {
	backend := &fakeBackend{err: errors.New("backend overloaded")}
	p := newTestPipeline(backend)

	_, err := p.ProcessPages(context.Background(), writePageImages(t, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 1")
	// No retry: one failed call, then stop.
	assert.Len(t, backend.requests, 1)
}

func TestProcessImage(t *testing.T) {
	backend := &fakeBackend{replies: []string{"document", "# Scanned\nbody"}}
	p := newTestPipeline(backend)

	out, err := p.ProcessImage(context.Background(), writePageImages(t, 1)[0])
	require.NoError(t, err)
	assert.Equal(t, "# Scanned\nbody", out)

	// Transcription request carries the fixed system prompt.
	require.Len(t, backend.requests, 2)
	assert.Equal(t, transcribeSystem, backend.requests[1].System)
	assert.Equal(t, 0.1, backend.requests[1].Temperature)
}
