package pages

import (
	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/frame"
	"termfolio/internal/layout"
)

// About shows a bitmap heading, a few paragraphs and onward links
type About struct {
	content  config.AboutContent
	measures Measures
}

// NewAbout creates the about page
func NewAbout(content config.AboutContent, m Measures) *About {
	return &About{content: content, measures: m}
}

func (p *About) Route() string { return config.RouteAbout }

func (p *About) Name() string { return "about" }

func (p *About) Options() []string { return config.LinkIDs(p.content.Links) }

func (p *About) Target(id string) (domain.Target, bool) {
	return linkTarget(p.content.Links, id)
}

func (p *About) Render(dim domain.Dimensions, current string) (frame.Content, error) {
	b := newContentBuilder()
	if err := b.heading(p.content.Heading, dim.Cols); err != nil {
		return frame.Content{}, err
	}
	b.add("")
	for _, paragraph := range p.content.Paragraphs {
		b.add(layout.WrapParagraph(paragraph, dim.Cols, p.measures.WrapWidth)...)
		b.add("")
	}
	for _, link := range p.content.Links {
		b.option(link.ID, optionLine(link.Label, link.ID == current, dim.Cols))
	}
	return b.content(current), nil
}
