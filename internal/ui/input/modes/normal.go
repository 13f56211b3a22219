package modes

import (
	"termfolio/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: types.DirectionNext}}, true

	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.NavigateAction{Direction: types.DirectionPrev}}, true

	case key.Matches(msg, m.keys.Activate):
		if ctx.CurrentOption() == "" {
			return nil, false
		}
		return []types.Action{types.ActivateAction{}}, true

	case key.Matches(msg, m.keys.Jump):
		if len(ctx.Options()) == 0 {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.GoHomeAction{}}, true

	case key.Matches(msg, m.keys.Source):
		return []types.Action{types.ViewSourceAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}
