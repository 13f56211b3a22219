// Package session owns the mutable state of one mounted page: its buffer
// state and option cursor. Events are applied one at a time and frames are
// derived from the resulting state.
package session

import (
	"errors"
	"fmt"
	"log"

	"termfolio/internal/buffer"
	"termfolio/internal/config"
	"termfolio/internal/cursor"
	"termfolio/internal/domain"
	"termfolio/internal/frame"
	"termfolio/internal/pages"
)

// Raw key identifiers understood by a session
const (
	KeyNext     = "j"
	KeyPrev     = "k"
	KeyActivate = "Enter"
)

// ErrClosed is returned when rendering a session after Close
var ErrClosed = errors.New("session closed")

// Options configures a page session
type Options struct {
	Initial domain.Dimensions
	Metrics buffer.Metrics
	Frame   frame.Options
}

// DefaultOptions returns the placeholder grid, default cell metrics and frame chrome
func DefaultOptions() Options {
	return Options{
		Initial: buffer.DefaultDimensions,
		Metrics: buffer.Metrics{LineHeightPx: buffer.DefaultLineHeightPx, GlyphWidthPx: 11},
		Frame:   frame.DefaultOptions(),
	}
}

// OptionsFrom reads the session options from a loaded config. A measured
// glyph run, when configured, takes precedence over glyph_width_px.
func OptionsFrom(cfg *config.Config) Options {
	glyphWidth := cfg.Display.GlyphWidthPx
	if w := buffer.MeasureGlyphWidth(cfg.Display.GlyphRunPx, cfg.Display.GlyphRunLength); w > 0 {
		glyphWidth = w
	}
	return Options{
		Initial: domain.Dimensions{Rows: cfg.Display.InitialRows, Cols: cfg.Display.InitialCols},
		Metrics: buffer.Metrics{LineHeightPx: cfg.Display.LineHeightPx, GlyphWidthPx: glyphWidth},
		Frame:   frame.Options{Hint: cfg.Layout.Hint, Gutter: cfg.Layout.GutterText()},
	}
}

// Session is the state of the active page
type Session struct {
	page   pages.Page
	state  buffer.State
	cursor *cursor.Cursor
	opts   Options
	closed bool
}

// New mounts page with a fresh buffer state and a cursor on its first option
func New(page pages.Page, opts Options) (*Session, error) {
	c, err := cursor.New(page.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to mount page %s: %w", page.Name(), err)
	}
	return &Session{
		page:   page,
		state:  buffer.Initial(opts.Initial),
		cursor: c,
		opts:   opts,
	}, nil
}

// Page returns the mounted page
func (s *Session) Page() pages.Page {
	return s.page
}

// Dimensions returns the current grid size
func (s *Session) Dimensions() domain.Dimensions {
	return s.state.Dim
}

// Current returns the option under the cursor
func (s *Session) Current() string {
	return s.cursor.Current()
}

// Apply handles one event to completion and returns the events it emits.
// Events reaching a closed session are dropped.
func (s *Session) Apply(e domain.Event) []domain.Event {
	if s.closed {
		return nil
	}

	switch e := e.(type) {
	case domain.ResizeEvent:
		dim := buffer.Measure(e.Viewport, s.opts.Metrics)
		s.state = buffer.Reduce(s.state, buffer.SetDimensions{Dim: dim})

	case domain.KeyEvent:
		switch e.Key {
		case KeyNext:
			s.cursor.Next()
		case KeyPrev:
			s.cursor.Prev()
		case KeyActivate:
			return s.activate()
		}

	case domain.JumpEvent:
		if !s.cursor.JumpTo(e.OptionID) {
			log.Printf("Jump to unknown option %q on page %s ignored", e.OptionID, s.page.Name())
		}
	}
	return nil
}

func (s *Session) activate() []domain.Event {
	id := s.cursor.Current()
	target, ok := s.page.Target(id)
	if !ok {
		log.Printf("Option %q on page %s has no target", id, s.page.Name())
		return nil
	}
	return []domain.Event{domain.ActivatedEvent{
		Page:     s.page.Name(),
		OptionID: id,
		Target:   target,
	}}
}

// Content renders the page's unwindowed rows for the current state
func (s *Session) Content() (frame.Content, error) {
	if s.closed {
		return frame.Content{}, ErrClosed
	}
	return s.page.Render(s.state.Dim, s.cursor.Current())
}

// Frame renders the page and assembles the grid for the current state
func (s *Session) Frame() (frame.Frame, error) {
	content, err := s.Content()
	if err != nil {
		return frame.Frame{}, fmt.Errorf("failed to render page %s: %w", s.page.Name(), err)
	}
	return frame.Assemble(s.state.Dim, content, s.opts.Frame), nil
}

// Close releases the session; later events are ignored
func (s *Session) Close() {
	s.closed = true
}

// Closed reports whether Close has been called
func (s *Session) Closed() bool {
	return s.closed
}
