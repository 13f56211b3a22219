package layout

// NoSelection marks content without a row that must stay visible
const NoSelection = -1

// Window is the visible slice of a content buffer after scrolling
type Window struct {
	Rows   []string
	Scroll int
}

// Map converts a content row index to its row inside the window.
// Rows scrolled out of view map outside [0, len(Rows)).
func (w Window) Map(i int) int {
	return i - w.Scroll
}

// Centered is a window padded with blank rows to fill the visible height
type Centered struct {
	Rows   []string
	Offset int
}

// Map converts a window row index to its final screen row
func (c Centered) Map(i int) int {
	return i + c.Offset
}

// WindowRows clamps rows to visibleCount rows starting at desiredScroll.
// A scroll past the available overflow is clamped, not rejected.
// The returned rows share backing storage with the input.
func WindowRows(rows []string, visibleCount, desiredScroll int) Window {
	visible := max(0, visibleCount)
	overflow := max(0, len(rows)-visible)
	scroll := min(overflow, max(0, desiredScroll))
	end := min(len(rows), scroll+visible)
	return Window{Rows: rows[scroll:end], Scroll: scroll}
}

// AutoScroll returns the scroll that puts selection in the middle of a
// window of visibleCount rows, or 0 when nothing is selected.
func AutoScroll(selection, visibleCount int) int {
	if selection == NoSelection {
		return 0
	}
	// floor(selection - visibleCount/2)
	return max(0, floorDiv(2*selection-visibleCount, 2))
}

// CenterRows pads rows with blanks above and below to exactly visibleCount
// rows. Rows that already fill the height are returned as they are.
func CenterRows(rows []string, visibleCount int) Centered {
	if len(rows) >= visibleCount {
		return Centered{Rows: rows}
	}

	offset := floorDiv(visibleCount-len(rows), 2)
	out := make([]string, visibleCount)
	for i := range out {
		if j := i - offset; j >= 0 && j < len(rows) {
			out[i] = rows[j]
		}
	}
	return Centered{Rows: out, Offset: offset}
}
