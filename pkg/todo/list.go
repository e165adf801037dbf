package todo

import (
	"sort"
	"strings"
)

// Warning records a line that failed to parse during a bulk load.
type Warning struct {
	Line int // 1-based line number
	Err  error
}

// List is an ordered collection of tasks, indexed from 0.
type List struct {
	todos []Todo
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// FromString parses each non-blank line of content independently.
// Lines that fail to parse are skipped and reported as warnings;
// loading never fails wholesale because of one bad line.
func FromString(content string) (*List, []Warning) {
	l := NewList()
	var warnings []Warning

	for n, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := Parse(line)
		if err != nil {
			warnings = append(warnings, Warning{Line: n + 1, Err: err})
			continue
		}
		l.todos = append(l.todos, t)
	}

	return l, warnings
}

// Add appends a task.
func (l *List) Add(t Todo) {
	l.todos = append(l.todos, t)
}

// Get returns a pointer to the task at index i, or nil when out of range.
// The pointer can be used to mutate the task in place.
func (l *List) Get(i int) *Todo {
	if i < 0 || i >= len(l.todos) {
		return nil
	}
	return &l.todos[i]
}

// Remove removes and returns the task at index i.
// Subsequent tasks shift down by one.
func (l *List) Remove(i int) (Todo, error) {
	if i < 0 || i >= len(l.todos) {
		return Todo{}, &IndexError{Index: i, Len: len(l.todos)}
	}
	t := l.todos[i]
	l.todos = append(l.todos[:i], l.todos[i+1:]...)
	return t, nil
}

func (l *List) Len() int {
	return len(l.todos)
}

// All returns the underlying tasks in order.
func (l *List) All() []Todo {
	return l.todos
}

// Filter returns pointers to every task matching the predicate,
// in collection order.
func (l *List) Filter(predicate func(*Todo) bool) []*Todo {
	var out []*Todo
	for i := range l.todos {
		if predicate(&l.todos[i]) {
			out = append(out, &l.todos[i])
		}
	}
	return out
}

// Incomplete returns the tasks not yet done.
func (l *List) Incomplete() []*Todo {
	return l.Filter(func(t *Todo) bool { return !t.Completed })
}

// Completed returns the tasks already done.
func (l *List) Completed() []*Todo {
	return l.Filter(func(t *Todo) bool { return t.Completed })
}

// WithPriority returns the tasks with exactly the given priority.
func (l *List) WithPriority(p Priority) []*Todo {
	return l.Filter(func(t *Todo) bool { return t.Priority != nil && *t.Priority == p })
}

// WithProject returns the tasks belonging to a project.
func (l *List) WithProject(project string) []*Todo {
	return l.Filter(func(t *Todo) bool { return t.HasProject(project) })
}

// WithContext returns the tasks with a context.
func (l *List) WithContext(context string) []*Todo {
	return l.Filter(func(t *Todo) bool { return t.HasContext(context) })
}

// SortBy sorts the list in place with a caller-supplied comparison.
// The sort is stable: equal tasks keep their relative order.
func (l *List) SortBy(less func(a, b *Todo) bool) {
	sort.SliceStable(l.todos, func(i, j int) bool {
		return less(&l.todos[i], &l.todos[j])
	})
}

// SortByPriority sorts prioritised tasks first, A before B.
// Tasks without a priority go last.
func (l *List) SortByPriority() {
	l.SortBy(func(a, b *Todo) bool {
		switch {
		case a.Priority != nil && b.Priority != nil:
			return *a.Priority < *b.Priority
		case a.Priority != nil:
			return true
		default:
			return false
		}
	})
}

// SortByCreationDate sorts dated tasks first, most recent first.
func (l *List) SortByCreationDate() {
	l.SortBy(func(a, b *Todo) bool {
		switch {
		case a.CreationDate != nil && b.CreationDate != nil:
			return b.CreationDate.Before(*a.CreationDate)
		case a.CreationDate != nil:
			return true
		default:
			return false
		}
	})
}

// SortByDescription sorts lexicographically by description.
func (l *List) SortByDescription() {
	l.SortBy(func(a, b *Todo) bool {
		return a.Description < b.Description
	})
}

// String renders every task on its own line, in collection order.
func (l *List) String() string {
	lines := make([]string, len(l.todos))
	for i, t := range l.todos {
		lines[i] = t.String()
	}
	return strings.Join(lines, "\n")
}
