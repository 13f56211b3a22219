// Package frame composes page content into the fixed-height grid that is
// painted each render: windowed, vertically centered, followed by a hint row.
package frame

import (
	"termfolio/internal/domain"
	"termfolio/internal/layout"
)

// DefaultHint is the help string shown on the last row of every frame
const DefaultHint = "[navigate using jk and Enter]"

// Content is what a page produces for one render
type Content struct {
	Rows     []string
	Selected int // row that must stay visible, or layout.NoSelection
}

// Plain wraps rows that have no selected line
func Plain(rows []string) Content {
	return Content{Rows: rows, Selected: layout.NoSelection}
}

// Options controls the parts of a frame that are not page content
type Options struct {
	Hint   string
	Gutter string // prefix drawn at the start of every row
}

// DefaultOptions returns the hint and gutter used when none are configured
func DefaultOptions() Options {
	return Options{Hint: DefaultHint, Gutter: "~"}
}

// Frame is the complete grid for one render cycle
type Frame struct {
	Rows      []string
	Highlight int // index into Rows, or -1 when nothing is highlighted
}

// Body returns the rows above the hint row
func (f Frame) Body() []string {
	if len(f.Rows) == 0 {
		return nil
	}
	return f.Rows[:len(f.Rows)-1]
}

// Hint returns the hint row
func (f Frame) Hint() string {
	if len(f.Rows) == 0 {
		return ""
	}
	return f.Rows[len(f.Rows)-1]
}

// Assemble windows content around its selected row, centers it in dim.Rows
// rows and appends the hint row. The body always has exactly
// max(dim.Rows, 0) rows whatever the content length.
func Assemble(dim domain.Dimensions, content Content, opts Options) Frame {
	visible := max(0, dim.Rows)

	win := layout.WindowRows(content.Rows, visible, layout.AutoScroll(content.Selected, visible))
	framed := layout.CenterRows(win.Rows, visible)

	rows := make([]string, 0, len(framed.Rows)+1)
	for _, row := range framed.Rows {
		rows = append(rows, opts.Gutter+row)
	}
	hintWidth := dim.Cols - layout.Width(opts.Gutter)
	rows = append(rows, opts.Gutter+layout.CenterText(opts.Hint, hintWidth))

	highlight := -1
	if content.Selected >= 0 && content.Selected < len(content.Rows) {
		if row := framed.Map(win.Map(content.Selected)); row >= 0 && row < len(framed.Rows) {
			highlight = row
		}
	}

	return Frame{Rows: rows, Highlight: highlight}
}
