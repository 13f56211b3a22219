package pages

import (
	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/frame"
	"termfolio/internal/layout"
)

// Configs links to dotfiles. The back option is set apart by a blank row and
// every option carries a two column indent.
type Configs struct {
	content  config.ConfigsContent
	measures Measures
}

// NewConfigs creates the configs page
func NewConfigs(content config.ConfigsContent, m Measures) *Configs {
	return &Configs{content: content, measures: m}
}

func (p *Configs) Route() string { return config.RouteConfigs }

func (p *Configs) Name() string { return "configs" }

func (p *Configs) Options() []string { return config.LinkIDs(p.content.Links) }

func (p *Configs) Target(id string) (domain.Target, bool) {
	return linkTarget(p.content.Links, id)
}

func (p *Configs) Render(dim domain.Dimensions, current string) (frame.Content, error) {
	b := newContentBuilder()
	if err := b.heading(p.content.Heading, dim.Cols); err != nil {
		return frame.Content{}, err
	}
	b.add("")
	b.add(layout.WrapParagraph(p.content.Subtitle, dim.Cols, p.measures.WrapWidth)...)
	b.add("")

	for _, link := range p.content.Links {
		if link.ID == config.BackID {
			b.add("")
		}
		b.option(link.ID, configsOptionLine(link.Label, link.ID == current, dim.Cols))
	}
	return b.content(current), nil
}

// configsOptionLine keeps every label in the same column whether or not
// it is selected: "  label" or ">  label".
func configsOptionLine(label string, selected bool, cols int) string {
	marker := " "
	if selected {
		marker = SelectedPrefix
	}
	return layout.CenterText(marker+" "+label, cols)
}
