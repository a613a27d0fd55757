package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	symCheck = "✔"
	symCross = "✖"
)

// DisableColor forces plain output for every lipgloss renderer.
func DisableColor() { lipgloss.SetColorProfile(termenv.Ascii) }

// Messenger prints one-line CLI status messages.
type Messenger struct {
	Out, Err io.Writer
	Theme    Theme
}

// NewMessenger writes to stdout/stderr.
func NewMessenger(t Theme) Messenger {
	return Messenger{Out: os.Stdout, Err: os.Stderr, Theme: t}
}

func (m Messenger) OK(msg string) {
	fmt.Fprintln(m.Out, m.Theme.Success.Render(symCheck+" "+msg))
}

func (m Messenger) Fail(msg string) {
	fmt.Fprintln(m.Err, m.Theme.Error.Render(symCross+" "+msg))
}

// TermSize reports the size of the terminal on stdout, or 80x24 when
// stdout is not a terminal.
func TermSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
