package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles + glyphs + border.
// Renderers receive a Theme instead of reading package state.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	Cursor                   string
	BarFull, BarEmpty        string
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{"classic", "neon", "mono"}

// ParseTheme returns the named theme. Names are case-insensitive.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return classic(), nil
	case "neon":
		return neon(), nil
	case "mono":
		return mono(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want %s)", name, strings.Join(ThemeNames, ", "))
}

// Default is the classic theme.
func Default() Theme { return classic() }

func classic() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Name:    "classic",
		Title:   s.Bold(true),
		Muted:   s.Faint(true),
		Accent:  s.Foreground(lipgloss.Color("12")),
		Success: s.Foreground(lipgloss.Color("42")),
		Error:   s.Foreground(lipgloss.Color("9")).Bold(true),
		Pending: s.Foreground(lipgloss.Color("214")),

		Selected: s.Bold(true).Reverse(true),
		Done:     s.Faint(true).Strikethrough(true),
		Help:     s.Faint(true),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),

		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		Cursor:       "> ",
		BarFull:      "█",
		BarEmpty:     "░",
	}
}

func neon() Theme {
	t := classic()
	s := lipgloss.NewStyle()
	t.Name = "neon"
	t.Title = s.Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = s.Foreground(lipgloss.Color("14"))
	t.Pending = s.Foreground(lipgloss.Color("11"))
	t.BorderColor = lipgloss.Color("13")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.Cursor = "❯ "
	return t
}

// mono sets no colors and sticks to ASCII glyphs.
func mono() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Name:     "mono",
		Title:    s,
		Muted:    s,
		Accent:   s,
		Success:  s,
		Error:    s,
		Pending:  s,
		Selected: s,
		Done:     s,
		Help:     s,

		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},

		BoxUnchecked: "[ ]",
		BoxChecked:   "[x]",
		Cursor:       "> ",
		BarFull:      "#",
		BarEmpty:     "-",
	}
}
