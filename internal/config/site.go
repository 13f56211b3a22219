package config

// Routes of the built-in pages
const (
	RouteHome      = "/"
	RouteAbout     = "/about"
	RoutePortfolio = "/portfolio"
	RouteConfigs   = "/configs"
)

// KnownRoutes lists every route an internal link may point at
var KnownRoutes = []string{RouteHome, RouteAbout, RoutePortfolio, RouteConfigs}

// BackID is the option id that returns to the previous section
const BackID = "back"

// Site is the content of every page
type Site struct {
	Home      HomeContent      `toml:"home"`
	About     AboutContent     `toml:"about"`
	Portfolio PortfolioContent `toml:"portfolio"`
	Configs   ConfigsContent   `toml:"configs"`
}

// Link is a selectable option that leads somewhere
type Link struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Href  string `toml:"href"`
}

// HomeContent is the landing page
type HomeContent struct {
	Title   string `toml:"title"`
	Tagline string `toml:"tagline"`
	Links   []Link `toml:"links"`
}

// AboutContent is a heading, a few paragraphs and some links
type AboutContent struct {
	Heading    string   `toml:"heading"`
	Paragraphs []string `toml:"paragraphs"`
	Links      []Link   `toml:"links"`
}

// Project is one portfolio entry
type Project struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Href        string `toml:"href"`
}

// PortfolioContent lists projects followed by a way back
type PortfolioContent struct {
	Heading  string    `toml:"heading"`
	Projects []Project `toml:"projects"`
	Back     Link      `toml:"back"`
}

// ConfigsContent lists dotfile links
type ConfigsContent struct {
	Heading  string `toml:"heading"`
	Subtitle string `toml:"subtitle"`
	Links    []Link `toml:"links"`
}

// LinkIDs returns the ids of links in order
func LinkIDs(links []Link) []string {
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}
	return ids
}

// OptionIDs returns the selectable ids of the portfolio, projects first
func (p PortfolioContent) OptionIDs() []string {
	ids := make([]string, 0, len(p.Projects)+1)
	for _, project := range p.Projects {
		ids = append(ids, project.ID)
	}
	return append(ids, p.Back.ID)
}
