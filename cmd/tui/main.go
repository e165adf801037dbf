package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todotxt/internal/config"
	"github.com/td0m/todotxt/internal/ui"
	"github.com/td0m/todotxt/pkg/persist"
	"github.com/td0m/todotxt/pkg/todo"
	"github.com/td0m/todotxt/pkg/todoinput"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

var (
	filePath   = flag.String("file", "", "path to the todo.txt file (overrides config)")
	configPath = flag.String("config", config.DefaultPath(), "path to the config file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	check(err)
	if *filePath != "" {
		cfg.TodoFile = *filePath
	}

	a := &app{
		input:    todoinput.NewModel(),
		viewport: viewport.Model{},
		tabs:     ui.NewTabs([]string{"All", "Active", "Done"}),

		cfg:     cfg,
		list:    todo.NewList(),
		persist: persist.InText(cfg.TodoFile),
	}

	p := tea.NewProgram(a)
	p.EnterAltScreen()
	defer p.ExitAltScreen()

	check(p.Start())
}

const (
	headerHeight = 3
	footerHeight = 1
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

type app struct {
	mode   mode
	loaded bool

	viewport viewport.Model
	input    todoinput.Model
	tabs     ui.Tabs

	cursor  int
	visible []int // indices into the list, filtered by the active tab

	cfg      *config.Config
	list     *todo.List
	persist  persist.Persistor
	warnings []todo.Warning
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m app) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		verticalMargins := headerHeight + footerHeight
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalMargins
		m.tabs.Width = msg.Width

		if !m.loaded {
			m.load()
		}
		m.loaded = true
		m.setCursor(m.cursor)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.save()
			return m, tea.Quit
		case tea.KeyEsc:
			m.mode = modeNormal
			m.input.Reset()
		default:
			cmd = m.keyUpdate(msg)
		}
	}
	m.render()
	return m, cmd
}

func (m *app) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeInsert:
		if msg.Type == tea.KeyEnter {
			if t := m.input.Value(); t != nil {
				m.list.Add(*t)
				m.input.Reset()
				m.mode = modeNormal
				m.updateTasks()
				m.setCursor(len(m.visible))
				m.autosave()
			}
			return nil
		}
		m.input, cmd = m.input.Update(msg)
	case modeNormal:
		switch msg.String() {
		case "q":
			m.save()
			return tea.Quit
		case "tab":
			m.tabs.Next()
			m.updateTasks()
			m.setCursor(0)
		case "g":
			m.setCursor(0)
		case "G":
			m.setCursor(len(m.visible))
		case "ctrl+d":
			m.setCursor(m.cursor + 10)
		case "ctrl+u":
			m.setCursor(m.cursor - 10)
		case "j":
			m.setCursor(m.cursor + 1)
		case "k":
			m.setCursor(m.cursor - 1)
		case "t":
			if t := m.atCursor(); t != nil {
				if t.Completed {
					t.Uncomplete()
				} else {
					t.Complete(time.Now())
				}
				m.updateTasks()
				m.setCursor(m.cursor)
				m.autosave()
			}
		case "x", tea.KeyDelete.String():
			if i, ok := m.indexAtCursor(); ok {
				_, err := m.list.Remove(i)
				check(err)
				m.updateTasks()
				m.setCursor(m.cursor)
				m.autosave()
			}
		case "1":
			m.list.SortByPriority()
			m.updateTasks()
			m.autosave()
		case "2":
			m.list.SortByCreationDate()
			m.updateTasks()
			m.autosave()
		case "3":
			m.list.SortByDescription()
			m.updateTasks()
			m.autosave()
		case "o":
			m.mode = modeInsert
			m.input.Reset()
		}
	}
	return cmd
}

func (m *app) load() {
	list, warnings, err := m.persist.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			check(err)
		}
		// a missing file just means an empty list
		list = todo.NewList()
	}
	m.list = list
	m.warnings = warnings
	m.updateTasks()
}

func (m *app) save() {
	check(m.persist.Save(m.list))
}

func (m *app) autosave() {
	if m.cfg.AutoSave {
		m.save()
	}
}

// updateTasks recomputes the visible indices for the active tab.
func (m *app) updateTasks() {
	m.visible = m.visible[:0]
	done := make([]int, 0)
	for i := 0; i < m.list.Len(); i++ {
		t := m.list.Get(i)
		switch m.tabs.Value() {
		case 1: // Active
			if t.Completed {
				continue
			}
		case 2: // Done
			if !t.Completed {
				continue
			}
		default: // All
			if m.cfg.DoneLast && t.Completed {
				done = append(done, i)
				continue
			}
		}
		m.visible = append(m.visible, i)
	}
	m.visible = append(m.visible, done...)
}

func (m *app) render() {
	s := ""
	for row, i := range m.visible {
		s += ui.RenderTask(m.list.Get(i), row == m.cursor) + "\n"
	}
	m.viewport.SetContent(s)
}

func (m *app) setCursor(value int) {
	size := len(m.visible)
	m.cursor = clamp(value, 0, max(size-1, 0))

	if size == 0 {
		return
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursor - m.viewport.Height + 1
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	}
}

func (m app) indexAtCursor() (int, bool) {
	if m.cursor >= len(m.visible) {
		return 0, false
	}
	return m.visible[m.cursor], true
}

func (m app) atCursor() *todo.Todo {
	i, ok := m.indexAtCursor()
	if !ok {
		return nil
	}
	return m.list.Get(i)
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m app) View() string {
	statusline := ""
	switch {
	case m.mode == modeInsert:
		statusline = "add: " + m.input.View()
	case len(m.warnings) > 0:
		w := m.warnings[0]
		statusline = fmt.Sprintf("%d line(s) skipped, first at line %d: %v", len(m.warnings), w.Line, w.Err)
	}
	return m.tabs.View() + m.viewport.View() + "\n" + statusline
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
