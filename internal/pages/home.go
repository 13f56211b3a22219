package pages

import (
	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/frame"
	"termfolio/internal/layout"
)

// Home is the landing page: a title, a tagline and the section links
type Home struct {
	content config.HomeContent
}

// NewHome creates the landing page
func NewHome(content config.HomeContent) *Home {
	return &Home{content: content}
}

func (p *Home) Route() string { return config.RouteHome }

func (p *Home) Name() string { return "home" }

func (p *Home) Options() []string { return config.LinkIDs(p.content.Links) }

func (p *Home) Target(id string) (domain.Target, bool) {
	return linkTarget(p.content.Links, id)
}

func (p *Home) Render(dim domain.Dimensions, current string) (frame.Content, error) {
	b := newContentBuilder()
	b.add(
		layout.CenterText(p.content.Title, dim.Cols),
		"",
		layout.CenterText(p.content.Tagline, dim.Cols),
		"",
	)
	for _, link := range p.content.Links {
		b.option(link.ID, optionLine(link.Label, link.ID == current, dim.Cols))
	}
	return b.content(current), nil
}
