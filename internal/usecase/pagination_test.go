package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageHeightMM(t *testing.T) {
	// A capture twice as tall as wide fills two page widths of height.
	assert.InDelta(t, 420.0, ImageHeightMM(1000, 2000), 0.001)
	// 2x device scale cancels out: doubling both dimensions changes nothing.
	assert.InDelta(t, 420.0, ImageHeightMM(2000, 4000), 0.001)
	assert.Equal(t, 0.0, ImageHeightMM(0, 500))
}

func TestPageOffsetsStepByOnePageHeight(t *testing.T) {
	assert.Equal(t, []float64{0}, PageOffsets(0))
	assert.Equal(t, []float64{0}, PageOffsets(297))
	assert.Equal(t, []float64{0, -297}, PageOffsets(297.5))
	assert.Equal(t, []float64{0, -297, -594}, PageOffsets(700))
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		heightMM float64
		pages    int
	}{
		{0, 1},
		{100, 1},
		{297, 1},
		{297.5, 2},
		{594, 2},
		{700, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.pages, PageCount(tc.heightMM), "height %v", tc.heightMM)
	}
}

func TestPageCountMatchesOffsets(t *testing.T) {
	for _, h := range []float64{0, 50, 296.9, 297, 298, 500, 891, 1200} {
		assert.Len(t, PageOffsets(h), PageCount(h), "height %v", h)
	}
}
