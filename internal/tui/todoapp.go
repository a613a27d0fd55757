package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Options tune the TodoApp view.
type Options struct {
	Theme       ui.Theme
	Placeholder string
	CharLimit   int
	Logger      *slog.Logger
}

// chrome is the number of lines TodoApp draws around the list:
// panel border (2), header, input, mark-all label, status (2), help.
const chrome = 8

// TodoApp renders a store.Todos and turns key presses into store operations.
// The view is rebuilt from the store whenever the store publishes a change.
type TodoApp struct {
	todos *store.Todos
	theme ui.Theme
	log   *slog.Logger

	keys     keyMap
	help     help.Model
	input    textinput.Model
	list     list.Model
	delegate *itemDelegate
	focus    focus

	width, height int
	unsubscribe   func()
}

// NewTodoApp builds the view and subscribes it to todos.
func NewTodoApp(todos *store.Todos, opt Options) *TodoApp {
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opt.Theme.Name == "" {
		opt.Theme = ui.Default()
	}
	if opt.Placeholder == "" {
		opt.Placeholder = "What needs to be done?"
	}
	t := opt.Theme

	ti := textinput.New()
	ti.Prompt = "❯ "
	ti.Placeholder = opt.Placeholder
	ti.CharLimit = opt.CharLimit
	ti.PromptStyle = t.Accent
	ti.PlaceholderStyle = t.Muted
	ti.SetValue(todos.Draft())
	ti.Focus()

	d := &itemDelegate{theme: t}
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("todo", "todos")
	l.DisableQuitKeybindings()
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("pgup"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("pgdown"))
	l.Styles.PaginationStyle = t.Help
	l.Styles.NoItems = t.Muted

	h := help.New()
	h.Styles.ShortKey = t.Accent
	h.Styles.ShortDesc = t.Help
	h.Styles.ShortSeparator = t.Help

	m := &TodoApp{
		todos:    todos,
		theme:    t,
		log:      opt.Logger,
		keys:     defaultKeyMap(),
		help:     h,
		input:    ti,
		list:     l,
		delegate: d,
		focus:    focusInput,
	}
	m.unsubscribe = todos.Subscribe(m.onChange)
	m.SetSize(ui.TermSize())
	m.refresh()
	return m
}

// Close detaches the view from the store.
func (m *TodoApp) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *TodoApp) onChange(c store.Change) {
	if m.input.Value() != m.todos.Draft() {
		m.input.SetValue(m.todos.Draft())
	}
	if c.Op == store.OpDraft {
		return
	}
	m.refresh()
}

// refresh rebuilds the list rows from the store's visible items.
func (m *TodoApp) refresh() {
	var rows []list.Item
	for i, it := range m.todos.Visible() {
		rows = append(rows, row{Index: i, Item: it})
	}
	m.list.SetItems(rows)
	if n := len(rows); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

// SetSize fits the view into a w x h cell area.
func (m *TodoApp) SetSize(w, h int) {
	m.width, m.height = w, h
	inner := max(w-4, 10)
	m.input.Width = inner - lipgloss.Width(m.input.Prompt) - 1
	m.help.Width = inner
	m.list.SetSize(inner, max(h-chrome, 1))
}

func (m *TodoApp) setFocus(f focus) {
	m.focus = f
	m.delegate.focused = f == focusList
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// selected returns the full-list index of the highlighted row.
func (m *TodoApp) selected() (int, bool) {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return -1, false
	}
	return r.Index, true
}

func (m *TodoApp) Init() tea.Cmd { return textinput.Blink }

func (m *TodoApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchFocus):
			if m.focus == focusInput {
				m.setFocus(focusList)
			} else {
				m.setFocus(focusInput)
			}
			return m, nil
		case key.Matches(msg, m.keys.CycleFilter):
			m.todos.SetFilter(m.todos.Filter().Next())
			return m, nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *TodoApp) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if !m.todos.SubmitDraft() {
			m.log.Debug("empty draft ignored")
		}
		return m, nil
	case key.Matches(msg, m.keys.Leave):
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.todos.SetDraft(m.input.Value())
	return m, cmd
}

func (m *TodoApp) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Toggle):
		if i, ok := m.selected(); !ok || !m.todos.Toggle(i) {
			m.log.Debug("toggle ignored", "index", i)
		}
		return m, nil
	case key.Matches(msg, k.Remove):
		if i, ok := m.selected(); !ok || !m.todos.Remove(i) {
			m.log.Debug("remove ignored", "index", i)
		}
		return m, nil
	case key.Matches(msg, k.MarkAll):
		m.todos.MarkAllComplete()
		return m, nil
	case key.Matches(msg, k.ClearCompleted):
		m.todos.ClearCompleted()
		return m, nil
	case key.Matches(msg, k.FilterAll):
		m.todos.SetFilter(model.All)
		return m, nil
	case key.Matches(msg, k.FilterActive):
		m.todos.SetFilter(model.Active)
		return m, nil
	case key.Matches(msg, k.FilterCompleted):
		m.todos.SetFilter(model.Completed)
		return m, nil
	case key.Matches(msg, k.PrevFilter):
		m.todos.SetFilter(m.todos.Filter().Prev())
		return m, nil
	case key.Matches(msg, k.NextFilter):
		m.todos.SetFilter(m.todos.Filter().Next())
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *TodoApp) View() string {
	t := m.theme
	inner := max(m.width-4, 10)

	header := t.Title.Render("todos") + "  " +
		t.ProgressBar(m.todos.CompletedCount(), m.todos.Len(), min(20, inner/3))

	markAll := t.Muted.Render("  Mark all as complete (a)")
	if m.todos.Len() > 0 && m.todos.RemainingCount() == 0 {
		markAll = t.Success.Render("  " + t.BoxChecked + " All complete")
	}

	lines := []string{
		header,
		m.input.View(),
		markAll,
		m.list.View(),
		m.statusLine(),
		m.help.View(helpKeys{keys: m.keys, focus: m.focus}),
	}
	return t.Panel(strings.Join(lines, "\n"))
}

// statusLine shows the remaining count and the clear button, then the
// filter links on a second line.
func (m *TodoApp) statusLine() string {
	t := m.theme

	n := m.todos.RemainingCount()
	word := "items"
	if n == 1 {
		word = "item"
	}
	count := t.Title.Render(fmt.Sprint(n)) + " " + word + " left"

	links := make([]string, 0, 3)
	for _, f := range model.Filters() {
		name := f.String()
		if f == m.todos.Filter() {
			links = append(links, t.Selected.Render("["+name+"]"))
		} else {
			links = append(links, t.Accent.Render(" "+name+" "))
		}
	}

	clearBtn := t.Muted.Render("Clear completed")
	if m.todos.CompletedCount() > 0 {
		clearBtn = t.Pending.Render("Clear completed (c)")
	}
	return count + "   " + clearBtn + "\n" + strings.Join(links, " ")
}
