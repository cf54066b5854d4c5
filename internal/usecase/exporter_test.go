package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/usecase"
)

// fakeRasterizer returns a synthetic capture without driving a browser.
type fakeRasterizer struct {
	width   int
	height  int
	err     error
	entered chan struct{} // closed when Rasterize is first reached
	release chan struct{} // when set, Rasterize blocks until closed
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, html, targetID string) (usecase.Capture, error) {
	if f.entered != nil {
		close(f.entered)
		f.entered = nil
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return usecase.Capture{}, f.err
	}
	return usecase.Capture{PNG: solidPNG(f.width, f.height), Width: f.width, Height: f.height}, nil
}

func solidPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func TestExportProducesPaginatedPDF(t *testing.T) {
	// 400x2000px at 210mm width is 1050mm of content, so four pages.
	exp := usecase.NewExporter(&fakeRasterizer{width: 400, height: 2000})

	res, err := exp.Export(context.Background(), "<html></html>", "resume-preview", "Ada Lovelace")
	require.NoError(t, err)

	assert.Equal(t, "Ada-Lovelace-resume.pdf", res.Filename)
	assert.Equal(t, 4, res.Pages)
	assert.Equal(t, usecase.PageCount(usecase.ImageHeightMM(400, 2000)), res.Pages)
	assert.True(t, bytes.HasPrefix(res.PDF, []byte("%PDF-")), "output is not a PDF")
	assert.Contains(t, string(res.PDF), "/Count 4")
}

func TestExportShortCaptureIsOnePage(t *testing.T) {
	exp := usecase.NewExporter(&fakeRasterizer{width: 800, height: 400})

	res, err := exp.Export(context.Background(), "<html></html>", "resume-preview", "")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "resume-resume.pdf", res.Filename)
}

func TestExportRejectsConcurrentRuns(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	exp := usecase.NewExporter(&fakeRasterizer{width: 400, height: 400, entered: entered, release: release})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := exp.Export(context.Background(), "x", "resume-preview", "")
		assert.NoError(t, err)
	}()

	// Once Rasterize has been reached the busy flag is held.
	<-entered
	_, err := exp.Export(context.Background(), "x", "resume-preview", "")
	assert.ErrorIs(t, err, usecase.ErrExportBusy)

	close(release)
	wg.Wait()
}

func TestExportReleasesBusyAfterFailure(t *testing.T) {
	boom := errors.New("browser crashed")
	failing := &fakeRasterizer{err: boom}
	exp := usecase.NewExporter(failing)

	_, err := exp.Export(context.Background(), "x", "resume-preview", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	failing.err = nil
	failing.width, failing.height = 400, 400
	_, err = exp.Export(context.Background(), "x", "resume-preview", "")
	assert.NoError(t, err)
}

func TestExportTargetMissingPassesThrough(t *testing.T) {
	exp := usecase.NewExporter(&fakeRasterizer{err: usecase.ErrTargetMissing})

	_, err := exp.Export(context.Background(), "x", "resume-preview", "")
	assert.ErrorIs(t, err, usecase.ErrTargetMissing)
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "Ada-Lovelace-resume.pdf"},
		{"  Ada   Lovelace  ", "Ada-Lovelace-resume.pdf"},
		{"Grace", "Grace-resume.pdf"},
		{"", "resume-resume.pdf"},
		{"   ", "resume-resume.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, usecase.Filename(tc.name), "input %q", tc.name)
	}
}
