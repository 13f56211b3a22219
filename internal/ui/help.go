package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"termfolio/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// ErrNoProgram is returned when the pager is shown before SetProgram
var ErrNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	help help.Model
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return &HelpRenderer{help: h}
}

// Render generates the help text shown in the pager
func (r *HelpRenderer) Render(keys types.KeyMap, pageNames []string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("termfolio help"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(r.help.FullHelpView(keys.FullHelp()))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Jump prompt"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", r.help.Styles.FullKey.Render("tab  "), r.help.Styles.FullDesc.Render("complete option id"))
	fmt.Fprintf(&b, "  %s  %s\n", r.help.Styles.FullKey.Render("enter"), r.help.Styles.FullDesc.Render("move cursor to option"))
	fmt.Fprintf(&b, "  %s  %s\n", r.help.Styles.FullKey.Render("esc  "), r.help.Styles.FullDesc.Render("cancel"))

	if len(pageNames) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Pages"))
		b.WriteString("\n")
		for _, name := range pageNames {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}

	return b.String()
}

// terminal is the part of *tea.Program the pager needs
type terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// PagerOps shows long text in ov while the program is suspended
type PagerOps struct {
	program terminal // Bubble Tea program, for terminal management
	run     func(content string) error
}

// NewPagerOps creates a pager backed by ov
func NewPagerOps() *PagerOps {
	return &PagerOps{run: runOviewer}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	if program == nil {
		p.program = nil
		return
	}
	p.program = program
}

// Show releases the terminal, pages content and restores the terminal
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return ErrNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return p.run(content)
}

// ShowCmd runs Show off the update loop and reports back with pagerClosedMsg
func (p *PagerOps) ShowCmd(title, content string) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{title: title, err: p.Show(content)}
	}
}

func runOviewer(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
