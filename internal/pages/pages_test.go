package pages

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/layout"
)

var grid = domain.Dimensions{Rows: 30, Cols: 100}

func testRouter(t *testing.T) *Router {
	t.Helper()
	return NewRouter(config.DefaultConfig().Site, DefaultMeasures())
}

func TestRouterResolve(t *testing.T) {
	r := testRouter(t)
	assert.Equal(t, config.KnownRoutes, r.Routes())

	for _, route := range config.KnownRoutes {
		p, err := r.Resolve(route)
		require.NoError(t, err)
		assert.Equal(t, route, p.Route())
		assert.NotEmpty(t, p.Options(), "page %s", p.Name())
	}

	_, err := r.Resolve("/blog")
	assert.True(t, errors.Is(err, ErrUnknownRoute))
}

func TestSelectedRowIsTheCurrentOption(t *testing.T) {
	r := testRouter(t)
	for _, route := range r.Routes() {
		p, err := r.Resolve(route)
		require.NoError(t, err)

		for _, id := range p.Options() {
			content, err := p.Render(grid, id)
			require.NoError(t, err)
			require.NotEqual(t, layout.NoSelection, content.Selected, "%s/%s", route, id)

			row := strings.TrimSpace(content.Rows[content.Selected])
			assert.True(t, strings.HasPrefix(row, SelectedPrefix), "%s/%s selected row %q", route, id, row)

			marked := 0
			for _, line := range content.Rows {
				if strings.HasPrefix(strings.TrimSpace(line), SelectedPrefix) {
					marked++
				}
			}
			assert.Equal(t, 1, marked, "exactly one option is marked on %s", route)
		}
	}
}

func TestHomeRender(t *testing.T) {
	home := NewHome(config.HomeContent{
		Title:   "Name",
		Tagline: "Hello",
		Links: []config.Link{
			{ID: "about", Label: "About", Href: config.RouteAbout},
			{ID: "configs", Label: "Configs", Href: config.RouteConfigs},
		},
	})

	content, err := home.Render(domain.Dimensions{Rows: 10, Cols: 20}, "configs")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"        Name",
		"",
		"       Hello",
		"",
		"       About",
		"     > Configs",
	}, content.Rows)
	assert.Equal(t, 5, content.Selected)

	target, ok := home.Target("about")
	require.True(t, ok)
	assert.Equal(t, config.RouteAbout, target.Route())

	_, ok = home.Target("nope")
	assert.False(t, ok)
}

func TestPortfolioLayout(t *testing.T) {
	content := config.PortfolioContent{
		Heading: "Portfolio",
		Projects: []config.Project{
			{ID: "one", Title: "One", Description: "First project.", Href: "https://example.com/one"},
			{ID: "two", Title: "Two", Description: "Second project.", Href: "https://example.com/two"},
		},
		Back: config.Link{ID: "back", Label: "Back", Href: "/"},
	}
	p := NewPortfolio(content, DefaultMeasures())
	assert.Equal(t, []string{"one", "two", "back"}, p.Options())

	rendered, err := p.Render(domain.Dimensions{Rows: 20, Cols: 80}, "two")
	require.NoError(t, err)

	rows := rendered.Rows
	require.Len(t, rows, layout.GlyphHeight+1+2*8+3)
	assert.Contains(t, rows[layout.GlyphHeight+1], " ONE ")
	assert.Equal(t, layout.CenterText(ViewProjectLabel, 80), rows[layout.GlyphHeight+1+4])
	assert.Equal(t, layout.CenterText(SelectedPrefix+ViewProjectLabel, 80), rows[rendered.Selected])
	assert.Equal(t, layout.GlyphHeight+1+8+4, rendered.Selected)

	back, err := p.Render(domain.Dimensions{Rows: 20, Cols: 80}, "back")
	require.NoError(t, err)
	assert.Equal(t, len(back.Rows)-2, back.Selected)

	target, ok := p.Target("one")
	require.True(t, ok)
	assert.True(t, target.IsExternal())
	target, ok = p.Target("back")
	require.True(t, ok)
	assert.Equal(t, "/", target.Route())
}

func TestConfigsSetsBackApart(t *testing.T) {
	p := NewConfigs(config.ConfigsContent{
		Heading:  "Configs",
		Subtitle: "Dotfiles",
		Links: []config.Link{
			{ID: "tmux", Label: "Tmux", Href: "https://example.com/tmux"},
			{ID: config.BackID, Label: "Back", Href: "/"},
		},
	}, DefaultMeasures())

	content, err := p.Render(domain.Dimensions{Rows: 20, Cols: 40}, config.BackID)
	require.NoError(t, err)

	rows := content.Rows
	assert.Equal(t, len(rows)-1, content.Selected)
	assert.Equal(t, "", rows[len(rows)-2])
	assert.Equal(t, layout.CenterText("  Tmux", 40), rows[len(rows)-3])
	assert.Equal(t, layout.CenterText(">  Back", 40), rows[len(rows)-1])
}

func TestConfigsOptionIndent(t *testing.T) {
	assert.Equal(t, "      Tmux", configsOptionLine("Tmux", false, 15))
	assert.Equal(t, "    >  Tmux", configsOptionLine("Tmux", true, 15))
	assert.Equal(t, "  Tmux", configsOptionLine("Tmux", false, 0))
}

func TestAboutFailsOnMissingGlyph(t *testing.T) {
	p := NewAbout(config.AboutContent{
		Heading: "About?",
		Links:   []config.Link{{ID: "back", Label: "Back", Href: "/"}},
	}, DefaultMeasures())

	_, err := p.Render(grid, "back")
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrMissingGlyph))
}

func TestAboutWrapsParagraphs(t *testing.T) {
	about := config.DefaultConfig().Site.About
	p := NewAbout(about, Measures{WrapWidth: 40, BannerWidth: 80})

	content, err := p.Render(domain.Dimensions{Rows: 40, Cols: 60}, "portfolio")
	require.NoError(t, err)

	for _, row := range content.Rows[layout.GlyphHeight:] {
		if strings.HasPrefix(strings.TrimSpace(row), SelectedPrefix) {
			continue
		}
		words := strings.Fields(row)
		if len(words) > 1 {
			assert.Less(t, layout.Width(strings.TrimLeft(row, " ")), 40, "row %q", row)
		}
	}
}
