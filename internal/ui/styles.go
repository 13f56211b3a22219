package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions used when painting a frame
type Styles struct {
	Highlight   lipgloss.Style
	Hint        lipgloss.Style
	Prompt      lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Gutter      lipgloss.Style
}

// NewStyles creates the styles with the highlight color from the config
func NewStyles(highlightColor string) *Styles {
	if highlightColor == "" {
		highlightColor = "212"
	}
	return &Styles{
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color(highlightColor)).Bold(true),
		Hint:        lipgloss.NewStyle().Faint(true),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Gutter:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
	}
}
