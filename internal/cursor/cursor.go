package cursor

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOptions is returned when a cursor is built over an empty list
	ErrNoOptions = errors.New("option list is empty")
	// ErrDuplicateOption is returned when an option id appears twice
	ErrDuplicateOption = errors.New("duplicate option id")
)

// Cursor is a cyclic pointer into an ordered list of option ids
type Cursor struct {
	options []string
	index   int
}

// New creates a cursor positioned on the first option
func New(options []string) (*Cursor, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	seen := make(map[string]bool, len(options))
	for _, id := range options {
		if seen[id] {
			return nil, fmt.Errorf("failed to create cursor: %w %q", ErrDuplicateOption, id)
		}
		seen[id] = true
	}
	return &Cursor{options: append([]string(nil), options...)}, nil
}

// Next moves to the following option, wrapping to the first
func (c *Cursor) Next() {
	c.index = (c.index + 1) % len(c.options)
}

// Prev moves to the preceding option, wrapping to the last
func (c *Cursor) Prev() {
	c.index = (c.index - 1 + len(c.options)) % len(c.options)
}

// JumpTo moves to id. Unknown ids leave the cursor where it is.
func (c *Cursor) JumpTo(id string) bool {
	for i, option := range c.options {
		if option == id {
			c.index = i
			return true
		}
	}
	return false
}

// Current returns the id under the cursor
func (c *Cursor) Current() string {
	return c.options[c.index]
}

// Index returns the position of the cursor
func (c *Cursor) Index() int {
	return c.index
}

// Options returns a copy of the option ids
func (c *Cursor) Options() []string {
	return append([]string(nil), c.options...)
}
