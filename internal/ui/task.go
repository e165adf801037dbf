package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/todotxt/pkg/todo"
	"github.com/td0m/todotxt/pkg/todo/date"
)

var (
	TaskCursor = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TaskTitle  = lipgloss.NewStyle().Bold(true)
	DoneTitle  = lipgloss.NewStyle().Foreground(Secondary).Strikethrough(true)

	priorityBadge = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	projectStyle  = lipgloss.NewStyle().Foreground(Green)
	contextStyle  = lipgloss.NewStyle().Foreground(Blue)
	tagStyle      = lipgloss.NewStyle().Foreground(Faded)
	dateStyle     = lipgloss.NewStyle().Foreground(Secondary)
)

// RenderTask renders one todo line with per-field styling.
func RenderTask(t *todo.Todo, selected bool) string {
	var b strings.Builder

	cursor := " "
	if selected {
		cursor = ">"
	}
	b.WriteString(TaskCursor.Render(cursor))

	title := TaskTitle
	if t.Completed {
		title = DoneTitle
		b.WriteString(dateStyle.Render("x "))
	}

	if !t.Completed && t.Priority != nil {
		b.WriteString(priorityBadge.Render(t.Priority.String()) + " ")
	}
	if t.CreationDate != nil {
		b.WriteString(dateStyle.Render(date.Format(*t.CreationDate)) + " ")
	}

	b.WriteString(title.Render(t.Description))

	for _, p := range t.Projects {
		b.WriteString(" " + projectStyle.Render("+"+p))
	}
	for _, c := range t.Contexts {
		b.WriteString(" " + contextStyle.Render("@"+c))
	}
	if due, ok := t.Tag("due"); ok {
		b.WriteString(" " + tagStyle.Render("due:"+due))
	}

	return b.String()
}
