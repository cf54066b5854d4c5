// Package usecase contains the pagination/export engine: it turns the
// rendered preview into a multi-page A4 PDF download.
package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"regexp"
	"strings"
	"sync/atomic"
)

var (
	// ErrExportBusy rejects a second export while one is in flight; the two
	// would race on the shared off-screen clone.
	ErrExportBusy = errors.New("an export is already in progress")

	// ErrTargetMissing means the preview element does not exist; the engine
	// aborts before any clone or raster work.
	ErrTargetMissing = errors.New("export target not found")
)

// Capture is a full-height raster of the preview clone, taken at 2x device
// scale. Width and Height are the bitmap's pixel dimensions.
type Capture struct {
	PNG    []byte
	Width  int
	Height int
}

// Rasterizer produces a Capture from rendered HTML. The implementation owns
// the off-screen clone and must detach it on every exit path.
type Rasterizer interface {
	Rasterize(ctx context.Context, html, targetID string) (Capture, error)
}

// Result is a finished export ready to hand to the browser as a download.
type Result struct {
	Filename string
	PDF      []byte
	Pages    int
}

// Exporter slices a single continuous raster of the preview into fixed A4
// pages. Content is split at exact page boundaries rather than reflowed, so
// text may be visually cut at a boundary; that tradeoff is intentional.
type Exporter struct {
	rast Rasterizer
	busy atomic.Bool
}

func NewExporter(r Rasterizer) *Exporter {
	return &Exporter{rast: r}
}

// Export rasterizes the rendered preview identified by targetID and encodes
// it as a paginated A4 PDF. At most one export runs at a time.
func (e *Exporter) Export(ctx context.Context, html, targetID, fullName string) (*Result, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrExportBusy
	}
	defer e.busy.Store(false)

	cap, err := e.rast.Rasterize(ctx, html, targetID)
	if err != nil {
		if errors.Is(err, ErrTargetMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("rasterizing preview: %w", err)
	}

	jpg, err := recompress(cap.PNG)
	if err != nil {
		return nil, fmt.Errorf("encoding capture: %w", err)
	}

	pdf, pages, err := buildPDF(jpg, cap.Width, cap.Height)
	if err != nil {
		return nil, fmt.Errorf("assembling PDF: %w", err)
	}

	return &Result{Filename: Filename(fullName), PDF: pdf, Pages: pages}, nil
}

// recompress re-encodes the lossless capture as JPEG to bound file size.
func recompress(pngBytes []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename derives the download name from the user's full name: whitespace
// collapses to single dashes, empty names fall back to "resume".
func Filename(fullName string) string {
	name := whitespace.ReplaceAllString(strings.TrimSpace(fullName), "-")
	if name == "" {
		name = "resume"
	}
	return name + "-resume.pdf"
}
