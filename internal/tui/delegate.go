package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

// row adapts a visible item to bubbles/list.Item.
// Index is the item's position in the full list, not in the filtered view.
type row struct {
	Index int
	Item  model.Item
}

func (r row) FilterValue() string { return r.Item.Title }

// Custom delegate to control how rows render (single line)
type itemDelegate struct {
	theme   ui.Theme
	focused bool
}

func (d *itemDelegate) Height() int                               { return 1 }
func (d *itemDelegate) Spacing() int                              { return 0 }
func (d *itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d *itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := d.theme

	box := t.Muted.Render(t.BoxUnchecked)
	boxWidth := lipgloss.Width(t.BoxUnchecked)
	if r.Item.Completed {
		box = t.Success.Render(t.BoxChecked)
		boxWidth = lipgloss.Width(t.BoxChecked)
	}

	prefix := "  "
	if d.focused && index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
	}

	text := ui.Truncate(r.Item.Title, m.Width()-lipgloss.Width(t.Cursor)-boxWidth-1)
	if r.Item.Completed {
		text = t.Done.Render(text)
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}
