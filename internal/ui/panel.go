package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ProgressBar renders a bar with a done/total counter.
func (t Theme) ProgressBar(done, total, width int) string {
	div := total
	if div <= 0 {
		div = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(div) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return t.Success.Render(bar) + t.Muted.Render(fmt.Sprintf(" %d/%d", done, total))
}

// Panel draws a framed box around inner.
func (t Theme) Panel(inner string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Truncate cuts s to at most width terminal cells, ending in an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
