package domain

import "strings"

// Dimensions is the character grid derived from the viewport
type Dimensions struct {
	Rows int
	Cols int
}

// Viewport is the pixel size of the visible display area
type Viewport struct {
	PixelWidth  float64
	PixelHeight float64
}

// Target is where an option leads when activated
type Target struct {
	Href string
}

// IsExternal reports whether the target leaves the site (a URL rather than a route)
func (t Target) IsExternal() bool {
	return strings.Contains(t.Href, "://")
}

// Route returns the internal route for the target, or "" for external targets
func (t Target) Route() string {
	if t.IsExternal() {
		return ""
	}
	return t.Href
}
