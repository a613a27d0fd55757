package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/ui"
)

// Footer is the static block rendered below the todo panel.
type Footer struct {
	theme ui.Theme
}

var footerLines = []string{
	"Type and press enter to add a todo, tab to reach the list",
	"Built with Bubble Tea",
	"Part of TodoMVC",
}

func (f Footer) Height() int { return len(footerLines) }

func (f Footer) View() string {
	return f.theme.Help.Render(strings.Join(footerLines, "\n"))
}

// App stacks a TodoApp above a Footer.
type App struct {
	Todo   *TodoApp
	Footer Footer
}

func NewApp(todo *TodoApp) *App {
	a := &App{Todo: todo, Footer: Footer{theme: todo.theme}}
	a.Todo.SetSize(todo.width, todo.height-a.Footer.Height())
	return a
}

func (a *App) Init() tea.Cmd { return a.Todo.Init() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.Todo.SetSize(ws.Width, ws.Height-a.Footer.Height())
		return a, nil
	}
	_, cmd := a.Todo.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.Todo.View(), a.Footer.View())
}
