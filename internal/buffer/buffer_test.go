package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/domain"
)

func TestReduceSetDimensions(t *testing.T) {
	s := Initial(DefaultDimensions)
	require.Equal(t, domain.Dimensions{Rows: 60, Cols: 150}, s.Dim)

	next := Reduce(s, SetDimensions{Dim: domain.Dimensions{Rows: 20, Cols: 70}})
	assert.Equal(t, domain.Dimensions{Rows: 20, Cols: 70}, next.Dim)
	assert.Equal(t, DefaultDimensions, s.Dim, "reduce returns a new state")

	shrunk := Reduce(next, SetDimensions{Dim: domain.Dimensions{}})
	assert.Equal(t, domain.Dimensions{}, shrunk.Dim, "dimensions are replaced unconditionally")
}

func TestMeasure(t *testing.T) {
	m := Metrics{LineHeightPx: 22, GlyphWidthPx: 11}

	dim := Measure(domain.Viewport{PixelWidth: 1100, PixelHeight: 660}, m)
	assert.Equal(t, domain.Dimensions{Rows: 29, Cols: 99}, dim)

	dim = Measure(domain.Viewport{PixelWidth: 1105.5, PixelHeight: 681}, m)
	assert.Equal(t, domain.Dimensions{Rows: 29, Cols: 99}, dim, "partial cells are dropped")

	assert.Equal(t, domain.Dimensions{}, Measure(domain.Viewport{PixelWidth: 5, PixelHeight: 5}, m))
	assert.Equal(t, domain.Dimensions{}, Measure(domain.Viewport{PixelWidth: 500, PixelHeight: 500}, Metrics{}))
}

func TestCellViewportRoundTrip(t *testing.T) {
	m := Metrics{LineHeightPx: DefaultLineHeightPx, GlyphWidthPx: 9.6}
	dim := Measure(CellViewport(120, 40, m), m)
	assert.Equal(t, domain.Dimensions{Rows: 39, Cols: 119}, dim)
}

func TestCellViewportRoundTripFractionalMetrics(t *testing.T) {
	for _, line := range []float64{22, 22.4, 17.6, 19.2, 21.3, 18.75} {
		for _, glyph := range []float64{11, 9.6, 8.4, 7.2, 10.3, 8.8} {
			m := Metrics{LineHeightPx: line, GlyphWidthPx: glyph}
			for n := 1; n <= 400; n++ {
				dim := Measure(CellViewport(n, n, m), m)
				require.Equal(t, domain.Dimensions{Rows: n - 1, Cols: n - 1}, dim, "line=%v glyph=%v n=%d", line, glyph, n)
			}
		}
	}
}

func TestMeasureGlyphWidth(t *testing.T) {
	assert.InDelta(t, 9.6, MeasureGlyphWidth(96000, 10000), 1e-9)
	assert.Zero(t, MeasureGlyphWidth(100, 0))
}
