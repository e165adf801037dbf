// Package todoinput provides a text input bubble that live-validates a
// todo.txt line as it is typed.
package todoinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/td0m/todotxt/pkg/todo"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.Copy().
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.Copy().
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")
)

type Model struct {
	i     textinput.Model
	value *todo.Todo
}

func NewModel() Model {
	i := textinput.NewModel()
	i.Focus()
	i.CharLimit = 200
	i.Prompt = ""
	return Model{
		i: i,
	}
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.i, cmd = m.i.Update(msg)
		m.value = parseLine(m.i.Value())
		return m, cmd
	}
	return m, nil
}

// View renders the input followed by a validity indicator.
func (m Model) View() string {
	status := cross
	if m.value != nil {
		status = checkmark
	}
	return m.i.View() + status
}

// Value returns the parsed task, or nil while the input is not a valid line.
func (m Model) Value() *todo.Todo {
	return m.value
}

// Reset clears the input.
func (m *Model) Reset() {
	m.i.SetValue("")
	m.value = nil
}

func parseLine(s string) *todo.Todo {
	t, err := todo.Parse(s)
	if err != nil {
		return nil
	}
	return &t
}
