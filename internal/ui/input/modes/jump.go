package modes

import (
	"strings"

	"termfolio/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// JumpMode reads an option id and moves the cursor straight to it
type JumpMode struct {
	TextInputMode
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{
		TextInputMode: NewTextInputMode(types.ModeJump, "jump", "jump to: ", ti),
	}
}

func (m *JumpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyTab && m.textInput != nil {
		if id, ok := Complete(m.textInput.Value(), ctx.Options()); ok {
			m.textInput.SetValue(id)
			m.textInput.CursorEnd()
			return []types.Action{types.UpdateTextAction{Text: id}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

// Complete returns the only option id starting with prefix, or the
// longest prefix shared by all the candidates when there are several.
func Complete(prefix string, options []string) (string, bool) {
	var matches []string
	for _, id := range options {
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		return "", false
	}

	common := matches[0]
	for _, id := range matches[1:] {
		for !strings.HasPrefix(id, common) {
			common = common[:len(common)-1]
		}
	}
	if common == prefix && len(matches) > 1 {
		return "", false
	}
	return common, true
}
