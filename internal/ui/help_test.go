package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	inputtypes "termfolio/internal/ui/input/types"
)

func TestHelpListsBindingsAndPages(t *testing.T) {
	out := NewHelpRenderer().Render(inputtypes.DefaultKeyMap(), []string{"home       /", "about      /about"})

	for _, want := range []string{"termfolio help", "next option", "previous option", "jump to option by id", "back to home", "complete option id", "about      /about"} {
		assert.Contains(t, out, want)
	}
}

func TestPagerRestoresTerminalOnFailure(t *testing.T) {
	term := &fakeTerminal{}
	p := NewPagerOps()
	p.program = term
	p.run = func(string) error { return assert.AnError }

	assert.ErrorIs(t, p.Show("text"), assert.AnError)
	assert.Equal(t, 1, term.released)
	assert.Equal(t, 1, term.restored)
}

func TestPagerNeedsProgram(t *testing.T) {
	p := NewPagerOps()
	p.SetProgram(nil)
	assert.ErrorIs(t, p.Show("text"), ErrNoProgram)
}
