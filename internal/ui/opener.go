package ui

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoOpener is returned when no command is known for opening links
var ErrNoOpener = errors.New("no link opener available")

// LinkOpener hands external links to the desktop's browser
type LinkOpener struct {
	command []string
	start   func(name string, args ...string) error
}

// NewLinkOpener creates an opener running command, or the platform default when it is empty
func NewLinkOpener(command string) *LinkOpener {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		argv = DefaultOpenerCommand(runtime.GOOS)
	}
	return &LinkOpener{command: argv, start: startDetached}
}

// DefaultOpenerCommand returns the usual URL handler for goos
func DefaultOpenerCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open"}
	default:
		return nil
	}
}

// Command returns the argv used before the link
func (o *LinkOpener) Command() []string {
	return append([]string(nil), o.command...)
}

// Open starts the opener for href without waiting for the browser
func (o *LinkOpener) Open(href string) error {
	if len(o.command) == 0 {
		return ErrNoOpener
	}
	args := append(o.command[1:len(o.command):len(o.command)], href)
	if err := o.start(o.command[0], args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", href, err)
	}
	return nil
}

// OpenCmd wraps Open in a command reporting back through linkOpenedMsg
func (o *LinkOpener) OpenCmd(href string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{href: href, err: o.Open(href)}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
