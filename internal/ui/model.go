package ui

import (
	"fmt"
	"log"
	"strings"

	"termfolio/internal/buffer"
	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/frame"
	"termfolio/internal/layout"
	"termfolio/internal/pages"
	"termfolio/internal/session"
	"termfolio/internal/ui/input"
	inputtypes "termfolio/internal/ui/input/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// Model represents the UI state
type Model struct {
	config  *config.Config
	router  *pages.Router
	session *session.Session // the mounted page
	opts    session.Options

	width    int
	height   int
	viewport domain.Viewport

	// last assembled frame and the error that replaced it, if any
	frame     frame.Frame
	renderErr error

	status      string
	statusIsErr bool

	keys         inputtypes.KeyMap
	inputHandler *input.Handler
	styles       *Styles
	helpRenderer *HelpRenderer
	pager        *PagerOps
	opener       *LinkOpener

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the UI model with the configured start page mounted
func NewModel(cfg *config.Config, router *pages.Router) (*Model, error) {
	keys := inputtypes.DefaultKeyMap()
	m := &Model{
		config:       cfg,
		router:       router,
		opts:         session.OptionsFrom(cfg),
		keys:         keys,
		inputHandler: input.New(keys),
		styles:       NewStyles(cfg.UI.HighlightColor),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
		opener:       NewLinkOpener(cfg.UI.Opener),
	}
	if err := m.mount(cfg.UI.StartPage); err != nil {
		return nil, err
	}
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Session returns the mounted page session
func (m *Model) Session() *session.Session {
	return m.session
}

// Frame returns the most recently assembled frame
func (m *Model) Frame() frame.Frame {
	return m.frame
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = buffer.CellViewport(msg.Width, msg.Height, m.opts.Metrics)
		m.session.Apply(domain.ResizeEvent{Viewport: m.viewport})
		m.refresh()

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, input.SessionContext{Session: m.session})
		if len(actions) > 0 {
			m.clearStatus()
		}

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Pager for %s failed: %v", msg.title, msg.err)
			m.setError(fmt.Sprintf("could not show %s: %v", msg.title, msg.err))
		}

	case linkOpenedMsg:
		if msg.err != nil {
			log.Printf("Opening link failed: %v", msg.err)
			m.setError(msg.err.Error())
		} else {
			m.setStatus("opened " + msg.href)
		}

	default:
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		key := session.KeyNext
		if a.Direction == inputtypes.DirectionPrev {
			key = session.KeyPrev
		}
		m.session.Apply(domain.KeyEvent{Key: key})

	case inputtypes.ActivateAction:
		return m.handleEvents(m.session.Apply(domain.KeyEvent{Key: session.KeyActivate}))

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeJump {
			m.jump(strings.TrimSpace(a.Text))
		}

	case inputtypes.GoHomeAction:
		if m.session.Page().Route() != config.RouteHome {
			m.navigate(config.RouteHome)
		}

	case inputtypes.ShowHelpAction:
		return m.pager.ShowCmd("help", m.helpRenderer.Render(m.keys, m.pageNames()))

	case inputtypes.ViewSourceAction:
		content, err := m.session.Content()
		if err != nil {
			m.setError(err.Error())
			return nil
		}
		return m.pager.ShowCmd(m.session.Page().Name(), strings.Join(content.Rows, "\n"))

	case inputtypes.QuitAction:
		m.session.Close()
		return tea.Quit
	}

	return nil
}

// handleEvents follows the activation events emitted by the session
func (m *Model) handleEvents(events []domain.Event) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range events {
		activated, ok := e.(domain.ActivatedEvent)
		if !ok {
			continue
		}
		log.Printf("Activated %s on page %s -> %s", activated.OptionID, activated.Page, activated.Target.Href)

		if activated.Target.IsExternal() {
			m.setStatus("opening " + activated.Target.Href)
			cmds = append(cmds, m.opener.OpenCmd(activated.Target.Href))
			continue
		}
		m.navigate(activated.Target.Route())
	}
	return tea.Batch(cmds...)
}

func (m *Model) navigate(route string) {
	if err := m.mount(route); err != nil {
		log.Printf("Navigation to %s failed: %v", route, err)
		m.setError(err.Error())
	}
}

func (m *Model) jump(id string) {
	if id == "" {
		return
	}
	m.session.Apply(domain.JumpEvent{OptionID: id})
	if m.session.Current() != id {
		m.setError(fmt.Sprintf("no option %q", id))
	}
}

// mount replaces the active session with a fresh one for route
func (m *Model) mount(route string) error {
	page, err := m.router.Resolve(route)
	if err != nil {
		return err
	}
	s, err := session.New(page, m.opts)
	if err != nil {
		return err
	}

	if m.session != nil {
		m.session.Close()
	}
	m.session = s
	if m.width > 0 {
		m.session.Apply(domain.ResizeEvent{Viewport: m.viewport})
	}
	m.inputHandler.Reset()
	m.refresh()

	log.Printf("Mounted page %s", page.Name())
	return nil
}

// refresh reassembles the frame after the session changed
func (m *Model) refresh() {
	if m.session.Closed() {
		return
	}

	f, err := m.session.Frame()
	if err == nil {
		m.frame = f
		m.renderErr = nil
		return
	}

	if m.renderErr == nil || m.renderErr.Error() != err.Error() {
		log.Printf("Render failed: %v", err)
	}
	m.renderErr = err
	dim := m.session.Dimensions()
	m.frame = frame.Assemble(dim, frame.Plain([]string{layout.CenterText(err.Error(), dim.Cols)}), m.opts.Frame)
}

func (m *Model) pageNames() []string {
	var names []string
	for _, route := range m.router.Routes() {
		if p, err := m.router.Resolve(route); err == nil {
			names = append(names, fmt.Sprintf("%-10s %s", p.Name(), route))
		}
	}
	return names
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusIsErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusIsErr = false
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	for i, row := range m.frame.Body() {
		b.WriteString(m.paintRow(row, i == m.frame.Highlight))
		b.WriteString("\n")
	}
	b.WriteString(m.bottomRow())
	return b.String()
}

// paintRow clips a frame row to the terminal and styles its gutter
func (m *Model) paintRow(row string, highlighted bool) string {
	row = runewidth.Truncate(row, m.width, "")

	gutter := m.opts.Frame.Gutter
	body := strings.TrimPrefix(row, gutter)
	if len(body) == len(row) {
		gutter = ""
	}

	if highlighted {
		body = m.styles.Highlight.Render(body)
	}
	if gutter != "" {
		gutter = m.styles.Gutter.Render(gutter)
	}
	return gutter + body
}

// bottomRow is the hint row, replaced by the jump prompt or a status message when one is active
func (m *Model) bottomRow() string {
	gutter := m.opts.Frame.Gutter
	styledGutter := gutter
	if gutter != "" {
		styledGutter = m.styles.Gutter.Render(gutter)
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		return styledGutter + m.styles.Prompt.Render(m.inputHandler.Prompt()) + ti.View()
	}

	cols := m.session.Dimensions().Cols - layout.Width(gutter)
	if m.status != "" {
		text := runewidth.Truncate(layout.CenterText(m.status, cols), max(0, m.width-layout.Width(gutter)), "")
		style := m.styles.Status
		if m.statusIsErr {
			style = m.styles.StatusError
		}
		return styledGutter + style.Render(text)
	}

	hint := runewidth.Truncate(strings.TrimPrefix(m.frame.Hint(), gutter), max(0, m.width-layout.Width(gutter)), "")
	return styledGutter + m.styles.Hint.Render(hint)
}
