package pages

import (
	"strings"

	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/frame"
	"termfolio/internal/layout"
)

// ViewProjectLabel is the option drawn under every project
const ViewProjectLabel = "View project"

// Portfolio lists projects, each under its own banner, then a way back
type Portfolio struct {
	content  config.PortfolioContent
	measures Measures
}

// NewPortfolio creates the portfolio page
func NewPortfolio(content config.PortfolioContent, m Measures) *Portfolio {
	return &Portfolio{content: content, measures: m}
}

func (p *Portfolio) Route() string { return config.RoutePortfolio }

func (p *Portfolio) Name() string { return "portfolio" }

func (p *Portfolio) Options() []string { return p.content.OptionIDs() }

func (p *Portfolio) Target(id string) (domain.Target, bool) {
	for _, project := range p.content.Projects {
		if project.ID == id {
			return domain.Target{Href: project.Href}, true
		}
	}
	if id == p.content.Back.ID {
		return domain.Target{Href: p.content.Back.Href}, true
	}
	return domain.Target{}, false
}

func (p *Portfolio) Render(dim domain.Dimensions, current string) (frame.Content, error) {
	b := newContentBuilder()
	if err := b.heading(p.content.Heading, dim.Cols); err != nil {
		return frame.Content{}, err
	}
	b.add("")

	for _, project := range p.content.Projects {
		b.add(layout.SectionBanner(strings.ToUpper(project.Title), dim.Cols, p.measures.BannerWidth), "")
		b.add(layout.WrapParagraph(project.Description, dim.Cols, p.measures.WrapWidth)...)
		b.add("")
		b.option(project.ID, optionLine(ViewProjectLabel, project.ID == current, dim.Cols))
		b.add("", "", "")
	}

	back := p.content.Back
	b.add("")
	b.option(back.ID, optionLine(back.Label, back.ID == current, dim.Cols))
	b.add("")
	return b.content(current), nil
}
