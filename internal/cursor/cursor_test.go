package cursor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorCycles(t *testing.T) {
	c, err := New([]string{"about", "portfolio", "configs"})
	require.NoError(t, err)
	require.Equal(t, "about", c.Current())

	c.Next()
	assert.Equal(t, "portfolio", c.Current())
	c.Next()
	assert.Equal(t, "configs", c.Current())
	c.Next()
	assert.Equal(t, "about", c.Current(), "three steps forward wrap back to the start")

	c.Prev()
	assert.Equal(t, "configs", c.Current(), "prev from the first option wraps to the last")
	assert.Equal(t, 2, c.Index())
}

func TestCursorSingleOption(t *testing.T) {
	c, err := New([]string{"back"})
	require.NoError(t, err)

	c.Next()
	c.Prev()
	c.Prev()
	assert.Equal(t, "back", c.Current())
	assert.Equal(t, 0, c.Index())
}

func TestCursorJumpTo(t *testing.T) {
	c, err := New([]string{"neovim", "tmux", "vimrc", "back"})
	require.NoError(t, err)

	require.True(t, c.JumpTo("vimrc"))
	assert.Equal(t, "vimrc", c.Current())

	assert.False(t, c.JumpTo("emacs"))
	assert.Equal(t, "vimrc", c.Current(), "unknown ids are a no-op")

	c.Next()
	assert.Equal(t, "back", c.Current())
}

func TestCursorRejectsBadLists(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNoOptions))

	_, err = New([]string{"a", "b", "a"})
	assert.True(t, errors.Is(err, ErrDuplicateOption))
}

func TestCursorOptionsAreCopied(t *testing.T) {
	options := []string{"x", "y"}
	c, err := New(options)
	require.NoError(t, err)

	options[0] = "changed"
	assert.Equal(t, "x", c.Current())

	got := c.Options()
	got[1] = "changed"
	assert.Equal(t, []string{"x", "y"}, c.Options())
}
