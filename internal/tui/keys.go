package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// any focus
	SwitchFocus key.Binding
	CycleFilter key.Binding
	ForceQuit   key.Binding

	// input focus
	Submit key.Binding
	Leave  key.Binding

	// list focus
	Toggle          key.Binding
	Remove          key.Binding
	MarkAll         key.Binding
	ClearCompleted  key.Binding
	FilterAll       key.Binding
	FilterActive    key.Binding
	FilterCompleted key.Binding
	PrevFilter      key.Binding
	NextFilter      key.Binding
	Quit            key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		CycleFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "next filter")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),

		Toggle:          key.NewBinding(key.WithKeys(" ", "space", "x", "enter"), key.WithHelp("space", "toggle")),
		Remove:          key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d", "delete")),
		MarkAll:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all complete")),
		ClearCompleted:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		FilterAll:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterActive:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterCompleted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		PrevFilter:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev filter")),
		NextFilter:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next filter")),
		Quit:            key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// helpKeys adapts keyMap to help.KeyMap for the focused pane.
type helpKeys struct {
	keys  keyMap
	focus focus
}

func (h helpKeys) ShortHelp() []key.Binding {
	k := h.keys
	if h.focus == focusInput {
		return []key.Binding{k.Submit, k.SwitchFocus, k.CycleFilter, k.ForceQuit}
	}
	return []key.Binding{k.Toggle, k.Remove, k.MarkAll, k.ClearCompleted, k.NextFilter, k.SwitchFocus, k.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Submit, k.Leave, k.SwitchFocus},
		{k.Toggle, k.Remove, k.MarkAll, k.ClearCompleted},
		{k.FilterAll, k.FilterActive, k.FilterCompleted, k.PrevFilter, k.NextFilter, k.CycleFilter},
		{k.Quit, k.ForceQuit},
	}
}
