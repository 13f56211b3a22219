package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// GlyphHeight is the number of rows every bitmap glyph occupies
const GlyphHeight = 5

// ErrMissingGlyph is returned when a heading uses a character the font lacks
var ErrMissingGlyph = errors.New("missing bitmap glyph")

type glyph [GlyphHeight]string

// font covers A-Z and space. Rows inside a glyph share one width.
var font = map[rune]glyph{
	'A': {" ### ", "#   #", "#####", "#   #", "#   #"},
	'B': {"#### ", "#   #", "#### ", "#   #", "#### "},
	'C': {" ####", "#    ", "#    ", "#    ", " ####"},
	'D': {"#### ", "#   #", "#   #", "#   #", "#### "},
	'E': {"#####", "#    ", "#### ", "#    ", "#####"},
	'F': {"#####", "#    ", "#### ", "#    ", "#    "},
	'G': {" ####", "#    ", "#  ##", "#   #", " ####"},
	'H': {"#   #", "#   #", "#####", "#   #", "#   #"},
	'I': {"###", " # ", " # ", " # ", "###"},
	'J': {"  ###", "    #", "    #", "#   #", " ### "},
	'K': {"#   #", "#  # ", "###  ", "#  # ", "#   #"},
	'L': {"#    ", "#    ", "#    ", "#    ", "#####"},
	'M': {"#   #", "## ##", "# # #", "#   #", "#   #"},
	'N': {"#   #", "##  #", "# # #", "#  ##", "#   #"},
	'O': {" ### ", "#   #", "#   #", "#   #", " ### "},
	'P': {"#### ", "#   #", "#### ", "#    ", "#    "},
	'Q': {" ### ", "#   #", "# # #", "#  # ", " ## #"},
	'R': {"#### ", "#   #", "#### ", "#  # ", "#   #"},
	'S': {" ####", "#    ", " ### ", "    #", "#### "},
	'T': {"#####", "  #  ", "  #  ", "  #  ", "  #  "},
	'U': {"#   #", "#   #", "#   #", "#   #", " ### "},
	'V': {"#   #", "#   #", "#   #", " # # ", "  #  "},
	'W': {"#   #", "#   #", "# # #", "## ##", "#   #"},
	'X': {"#   #", " # # ", "  #  ", " # # ", "#   #"},
	'Y': {"#   #", " # # ", "  #  ", "  #  ", "  #  "},
	'Z': {"#####", "   # ", "  #  ", " #   ", "#####"},
	' ': {"   ", "   ", "   ", "   ", "   "},
}

// BitmapHeading renders text in the block font, one blank column between
// letters, and centers all five rows with a single shared offset.
func BitmapHeading(text string, viewportCols int) ([]string, error) {
	var rows [GlyphHeight]strings.Builder
	for i, r := range strings.ToUpper(text) {
		g, ok := font[r]
		if !ok {
			return nil, fmt.Errorf("failed to render heading %q: %w %q", text, ErrMissingGlyph, r)
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(g[row])
		}
	}

	widest := 0
	for row := range rows {
		widest = max(widest, Width(rows[row].String()))
	}
	indent := pad(centerOffset(viewportCols, widest))

	out := make([]string, GlyphHeight)
	for row := range rows {
		out[row] = indent + rows[row].String()
	}
	return out, nil
}

// HasGlyph reports whether r can be drawn by BitmapHeading
func HasGlyph(r rune) bool {
	_, ok := font[unicode.ToUpper(r)]
	return ok
}
