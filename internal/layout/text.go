// Package layout holds the pure text-layout and windowing primitives used to
// draw every page onto a fixed character grid. Nothing in here keeps state.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultWrapWidth is the typographic measure used for paragraphs
	DefaultWrapWidth = 80
	// DefaultBannerWidth is the width of a section banner row
	DefaultBannerWidth = 80
	// BannerFill is the glyph repeated on both sides of a banner heading
	BannerFill = "#"
)

// Width returns the display width of s in grid columns
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// CenterText left-pads text so it sits in the middle of width columns.
// Text wider than width is returned unchanged; it is never truncated.
func CenterText(text string, width int) string {
	return pad(centerOffset(width, Width(text))) + text
}

// WrapParagraph greedily packs the words of text into lines narrower than
// wrapWidth and indents them as one block centered in viewportCols.
// Each newline in text forces a break and leaves a blank line behind it;
// a segment with no words adds one more blank line, so "a\n\nb" has three.
func WrapParagraph(text string, viewportCols, wrapWidth int) []string {
	var lines []string
	for i, segment := range strings.Split(text, "\n") {
		if i > 0 {
			lines = append(lines, "")
		}
		words := strings.Fields(segment)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, packWords(words, wrapWidth)...)
	}

	indent := pad(centerOffset(viewportCols, wrapWidth))
	for i, line := range lines {
		lines[i] = indent + line
	}
	return lines
}

// packWords never re-flows a finished line; a word that cannot join the
// current line starts a new one even if it is wider than wrapWidth.
func packWords(words []string, wrapWidth int) []string {
	var lines []string
	current := ""
	for _, word := range words {
		if current != "" && Width(current)+1+Width(word) < wrapWidth {
			current += " " + word
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// SectionBanner builds a bannerWidth row of fill glyphs with heading set in
// the middle, then centers the row in viewportCols.
func SectionBanner(heading string, viewportCols, bannerWidth int) string {
	headingWidth := Width(heading)
	offset := centerOffset(bannerWidth, headingWidth)

	var row strings.Builder
	if offset > 0 {
		row.WriteString(strings.Repeat(BannerFill, offset-1))
		row.WriteString(" ")
	}
	row.WriteString(heading)
	if right := bannerWidth - offset - headingWidth; right > 0 {
		row.WriteString(" ")
		row.WriteString(strings.Repeat(BannerFill, right-1))
	}

	return CenterText(row.String(), viewportCols)
}

// centerOffset is floor(outer/2 - inner/2) clamped at zero
func centerOffset(outer, inner int) int {
	return max(0, floorDiv(outer-inner, 2))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
