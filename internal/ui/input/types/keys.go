package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of normal mode
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Jump     key.Binding
	Home     key.Binding
	Source   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next option"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous option"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open option"),
		),
		Jump: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "jump to option by id"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "backspace"),
			key.WithHelp("h", "back to home"),
		),
		Source: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view whole page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Activate, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate, k.Jump},
		{k.Home, k.Source, k.Help, k.Quit},
	}
}
