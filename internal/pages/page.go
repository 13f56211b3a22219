// Package pages holds the site's page variants. Each page turns its content
// data into rows for the current grid; none of them keeps state.
package pages

import (
	"errors"
	"fmt"
	"slices"

	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/frame"
	"termfolio/internal/layout"
)

// ErrUnknownRoute is returned when no page is registered for a route
var ErrUnknownRoute = errors.New("unknown route")

// SelectedPrefix marks the option under the cursor
const SelectedPrefix = "> "

// Page is the render contract every page implements
type Page interface {
	Route() string
	Name() string
	Options() []string
	Render(dim domain.Dimensions, current string) (frame.Content, error)
	Target(optionID string) (domain.Target, bool)
}

// Measures are the fixed typographic widths pages lay text out with
type Measures struct {
	WrapWidth   int
	BannerWidth int
}

// MeasuresFrom reads the measures from the layout settings
func MeasuresFrom(l config.LayoutSettings) Measures {
	return Measures{WrapWidth: l.WrapWidth, BannerWidth: l.BannerWidth}
}

// DefaultMeasures returns the default paragraph and banner widths
func DefaultMeasures() Measures {
	return Measures{WrapWidth: layout.DefaultWrapWidth, BannerWidth: layout.DefaultBannerWidth}
}

// optionLine renders one selectable option centered in the grid
func optionLine(label string, selected bool, cols int) string {
	if selected {
		label = SelectedPrefix + label
	}
	return layout.CenterText(label, cols)
}

// linkTarget finds the href of id among links
func linkTarget(links []config.Link, id string) (domain.Target, bool) {
	i := slices.IndexFunc(links, func(l config.Link) bool { return l.ID == id })
	if i < 0 {
		return domain.Target{}, false
	}
	return domain.Target{Href: links[i].Href}, true
}

// contentBuilder accumulates rows and remembers which row each option sits on
type contentBuilder struct {
	rows          []string
	optionsByLine map[string]int
}

func newContentBuilder() *contentBuilder {
	return &contentBuilder{optionsByLine: make(map[string]int)}
}

func (b *contentBuilder) add(rows ...string) {
	b.rows = append(b.rows, rows...)
}

func (b *contentBuilder) option(id, row string) {
	b.optionsByLine[id] = len(b.rows)
	b.rows = append(b.rows, row)
}

func (b *contentBuilder) heading(text string, cols int) error {
	rows, err := layout.BitmapHeading(text, cols)
	if err != nil {
		return err
	}
	b.add(rows...)
	return nil
}

func (b *contentBuilder) content(current string) frame.Content {
	selected, ok := b.optionsByLine[current]
	if !ok {
		selected = layout.NoSelection
	}
	return frame.Content{Rows: b.rows, Selected: selected}
}

// Router maps routes to pages
type Router struct {
	pages map[string]Page
	order []string
}

// NewRouter builds every page from the site content
func NewRouter(site config.Site, m Measures) *Router {
	r := &Router{pages: make(map[string]Page)}
	r.Register(NewHome(site.Home))
	r.Register(NewAbout(site.About, m))
	r.Register(NewPortfolio(site.Portfolio, m))
	r.Register(NewConfigs(site.Configs, m))
	return r
}

// Register adds or replaces the page for its route
func (r *Router) Register(p Page) {
	if _, exists := r.pages[p.Route()]; !exists {
		r.order = append(r.order, p.Route())
	}
	r.pages[p.Route()] = p
}

// Resolve returns the page registered for route
func (r *Router) Resolve(route string) (Page, error) {
	p, ok := r.pages[route]
	if !ok {
		return nil, fmt.Errorf("failed to resolve %q: %w", route, ErrUnknownRoute)
	}
	return p, nil
}

// Routes returns the registered routes in registration order
func (r *Router) Routes() []string {
	return append([]string(nil), r.order...)
}
