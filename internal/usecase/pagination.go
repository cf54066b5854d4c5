package usecase

import (
	"bytes"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// A4 page dimensions in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

const jpegQuality = 75

// ImageHeightMM scales the bitmap's pixel height to the height it occupies
// on the page once its width is stretched to the full A4 width.
func ImageHeightMM(pxWidth, pxHeight int) float64 {
	if pxWidth <= 0 {
		return 0
	}
	return float64(pxHeight) * PageWidthMM / float64(pxWidth)
}

// PageOffsets returns the vertical image offset for each page: page k places
// the image at -(k * page height), so consecutive pages expose consecutive
// slices of the same bitmap. Even an empty capture yields one page.
func PageOffsets(imageHeightMM float64) []float64 {
	offsets := []float64{0}
	position := 0.0
	heightLeft := imageHeightMM - PageHeightMM
	for heightLeft > 0 {
		position -= PageHeightMM
		offsets = append(offsets, position)
		heightLeft -= PageHeightMM
	}
	return offsets
}

// PageCount is ceil(imageHeight / pageHeight), with a single page minimum.
func PageCount(imageHeightMM float64) int {
	n := int(math.Ceil(imageHeightMM / PageHeightMM))
	if n < 1 {
		return 1
	}
	return n
}

// buildPDF places the one tall JPEG on successive A4 pages, shifting it up
// by one page height per page. This offset-subtraction loop is the
// load-bearing contract of the export; keep it exact.
func buildPDF(jpg []byte, pxWidth, pxHeight int) ([]byte, int, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader("preview", opts, bytes.NewReader(jpg))

	imgHeight := ImageHeightMM(pxWidth, pxHeight)
	offsets := PageOffsets(imgHeight)
	for _, position := range offsets {
		pdf.AddPage()
		pdf.ImageOptions("preview", 0, position, PageWidthMM, imgHeight, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(offsets), nil
}
