package buffer

import (
	"math"

	"termfolio/internal/domain"
)

// DefaultLineHeightPx is the pixel height of one grid row
const DefaultLineHeightPx = 22

// Metrics is the pixel size of one character cell
type Metrics struct {
	LineHeightPx float64
	GlyphWidthPx float64
}

// Measure converts a viewport to a character grid. One row is held back
// for the hint row and one column to avoid clipping at the right edge.
func Measure(v domain.Viewport, m Metrics) domain.Dimensions {
	if m.LineHeightPx <= 0 || m.GlyphWidthPx <= 0 {
		return domain.Dimensions{}
	}
	rows := cells(v.PixelHeight, m.LineHeightPx) - 1
	cols := cells(v.PixelWidth, m.GlyphWidthPx) - 1
	return domain.Dimensions{Rows: max(0, rows), Cols: max(0, cols)}
}

// cellEpsilon absorbs float error when px is an exact multiple of the cell
// size, e.g. 24*22.4/22.4 evaluating just below 24.
const cellEpsilon = 1e-9

// cells counts whole cells of size fitting in px
func cells(px, size float64) int {
	return int(math.Floor(px/size + cellEpsilon))
}

// MeasureGlyphWidth averages the width of a run of identical glyphs.
// Measuring a long run smooths out sub-pixel rounding of a single glyph.
func MeasureGlyphWidth(runWidthPx float64, runLength int) float64 {
	if runLength <= 0 {
		return 0
	}
	return runWidthPx / float64(runLength)
}

// CellViewport builds the viewport of a terminal that reports its size in
// cells, so terminal and pixel-based hosts share one measurement path.
func CellViewport(cols, rows int, m Metrics) domain.Viewport {
	return domain.Viewport{
		PixelWidth:  float64(cols) * m.GlyphWidthPx,
		PixelHeight: float64(rows) * m.LineHeightPx,
	}
}
