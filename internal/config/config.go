package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"termfolio/internal/layout"
)

//go:embed default_site.toml
var defaultSite []byte

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Display DisplaySettings `toml:"display"`
	Layout  LayoutSettings  `toml:"layout"`
	UI      UISettings      `toml:"ui"`
	Site    Site            `toml:"site"`
}

// DisplaySettings describes the character cell and the first-frame guess
type DisplaySettings struct {
	LineHeightPx float64 `toml:"line_height_px"`
	GlyphWidthPx float64 `toml:"glyph_width_px"`
	InitialRows  int     `toml:"initial_rows"`
	InitialCols  int     `toml:"initial_cols"`

	// A measured run of identical glyphs; when set its average width
	// replaces glyph_width_px.
	GlyphRunPx     float64 `toml:"glyph_run_px,omitempty"`
	GlyphRunLength int     `toml:"glyph_run_length,omitempty"`
}

// LayoutSettings controls text measures and the frame chrome
type LayoutSettings struct {
	WrapWidth   int    `toml:"wrap_width"`
	BannerWidth int    `toml:"banner_width"`
	Hint        string `toml:"hint"`
	Gutter      string `toml:"gutter"`
	NoGutter    bool   `toml:"no_gutter"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	StartPage      string `toml:"start_page"`
	HighlightColor string `toml:"highlight_color"`
	Opener         string `toml:"opener"` // command used for external links, platform default when empty
}

// GutterText returns the prefix drawn on every row
func (l LayoutSettings) GutterText() string {
	if l.NoGutter {
		return ""
	}
	return l.Gutter
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "termfolio", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads and validates configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Parse decodes a TOML document, fills unset fields from the defaults and
// validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults(DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the built-in configuration and site content
func DefaultConfig() *Config {
	var cfg Config
	if err := toml.Unmarshal(defaultSite, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config is broken: %v", err))
	}
	return &cfg
}

// applyDefaults fills zero values from def. Pages are taken whole: a page
// without any options in the file keeps the built-in content.
func (c *Config) applyDefaults(def *Config) {
	if c.Version == 0 {
		c.Version = def.Version
	}

	if c.Display.LineHeightPx == 0 {
		c.Display.LineHeightPx = def.Display.LineHeightPx
	}
	if c.Display.GlyphWidthPx == 0 {
		c.Display.GlyphWidthPx = def.Display.GlyphWidthPx
	}
	if c.Display.InitialRows == 0 {
		c.Display.InitialRows = def.Display.InitialRows
	}
	if c.Display.InitialCols == 0 {
		c.Display.InitialCols = def.Display.InitialCols
	}

	if c.Layout.WrapWidth == 0 {
		c.Layout.WrapWidth = def.Layout.WrapWidth
	}
	if c.Layout.BannerWidth == 0 {
		c.Layout.BannerWidth = def.Layout.BannerWidth
	}
	if c.Layout.Hint == "" {
		c.Layout.Hint = def.Layout.Hint
	}
	if c.Layout.Gutter == "" {
		c.Layout.Gutter = def.Layout.Gutter
	}

	if c.UI.StartPage == "" {
		c.UI.StartPage = def.UI.StartPage
	}
	if c.UI.HighlightColor == "" {
		c.UI.HighlightColor = def.UI.HighlightColor
	}

	if len(c.Site.Home.Links) == 0 {
		c.Site.Home = def.Site.Home
	}
	if len(c.Site.About.Links) == 0 {
		c.Site.About = def.Site.About
	}
	if len(c.Site.Portfolio.Projects) == 0 && c.Site.Portfolio.Back.ID == "" {
		c.Site.Portfolio = def.Site.Portfolio
	}
	if c.Site.Portfolio.Back.ID == "" {
		c.Site.Portfolio.Back = def.Site.Portfolio.Back
	}
	if len(c.Site.Configs.Links) == 0 {
		c.Site.Configs = def.Site.Configs
	}
}

// Validate checks the configuration for content bugs that would otherwise
// surface while rendering
func (c *Config) Validate() error {
	if c.Display.LineHeightPx <= 0 || c.Display.GlyphWidthPx <= 0 {
		return fmt.Errorf("%w: display metrics must be positive", ErrInvalidConfig)
	}
	if c.Display.GlyphRunPx < 0 || c.Display.GlyphRunLength < 0 ||
		(c.Display.GlyphRunPx > 0) != (c.Display.GlyphRunLength > 0) {
		return fmt.Errorf("%w: glyph_run_px and glyph_run_length must be set together and positive", ErrInvalidConfig)
	}
	if c.Display.InitialRows < 0 || c.Display.InitialCols < 0 {
		return fmt.Errorf("%w: initial dimensions must not be negative", ErrInvalidConfig)
	}
	if c.Layout.WrapWidth <= 0 || c.Layout.BannerWidth <= 0 {
		return fmt.Errorf("%w: wrap_width and banner_width must be positive", ErrInvalidConfig)
	}
	if !slices.Contains(KnownRoutes, c.UI.StartPage) {
		return fmt.Errorf("%w: unknown start_page %q", ErrInvalidConfig, c.UI.StartPage)
	}

	site := c.Site
	pages := []struct {
		name    string
		heading string
		ids     []string
		links   []Link
	}{
		{"home", "", LinkIDs(site.Home.Links), site.Home.Links},
		{"about", site.About.Heading, LinkIDs(site.About.Links), site.About.Links},
		{"portfolio", site.Portfolio.Heading, site.Portfolio.OptionIDs(), portfolioLinks(site.Portfolio)},
		{"configs", site.Configs.Heading, LinkIDs(site.Configs.Links), site.Configs.Links},
	}

	for _, p := range pages {
		if len(p.ids) == 0 {
			return fmt.Errorf("%w: page %s has no options", ErrInvalidConfig, p.name)
		}
		seen := make(map[string]bool, len(p.ids))
		for _, id := range p.ids {
			if id == "" {
				return fmt.Errorf("%w: page %s has an option without an id", ErrInvalidConfig, p.name)
			}
			if seen[id] {
				return fmt.Errorf("%w: page %s repeats option %q", ErrInvalidConfig, p.name, id)
			}
			seen[id] = true
		}
		for _, r := range p.heading {
			if !layout.HasGlyph(r) {
				return fmt.Errorf("%w: heading %q of page %s uses %q which has no bitmap glyph", ErrInvalidConfig, p.heading, p.name, r)
			}
		}
		for _, l := range p.links {
			if l.Href == "" {
				return fmt.Errorf("%w: option %q of page %s has no href", ErrInvalidConfig, l.ID, p.name)
			}
			if !strings.Contains(l.Href, "://") && !slices.Contains(KnownRoutes, l.Href) {
				return fmt.Errorf("%w: option %q of page %s points at unknown route %q", ErrInvalidConfig, l.ID, p.name, l.Href)
			}
		}
	}
	return nil
}

func portfolioLinks(p PortfolioContent) []Link {
	links := make([]Link, 0, len(p.Projects)+1)
	for _, project := range p.Projects {
		links = append(links, Link{ID: project.ID, Label: project.Title, Href: project.Href})
	}
	return append(links, p.Back)
}
