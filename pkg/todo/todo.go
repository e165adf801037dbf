// Package todo reads, represents, and writes tasks in the todo.txt format.
package todo

import (
	"sort"
	"strings"
	"time"

	"github.com/td0m/todotxt/pkg/todo/date"
)

// Todo is a single task in the todo.txt format.
type Todo struct {
	Completed bool

	// Priority is only rendered while the task is incomplete.
	Priority *Priority

	CompletionDate *time.Time
	CreationDate   *time.Time

	Description string

	// Contexts and Projects keep insertion order.
	// The parser appends every token it sees, duplicates included;
	// AddContext and AddProject skip duplicates.
	Contexts []string
	Projects []string

	Tags map[string]string
}

// New creates an incomplete task with the given description.
func New(description string) Todo {
	return Todo{
		Description: description,
		Tags:        map[string]string{},
	}
}

// Complete marks the task as done.
// If no completion date is set yet, the day of `at` is stamped.
func (t *Todo) Complete(at time.Time) {
	t.Completed = true
	if t.CompletionDate == nil {
		d := date.StartOfDay(at)
		t.CompletionDate = &d
	}
}

// Uncomplete marks the task as not done and clears the completion date.
func (t *Todo) Uncomplete() {
	t.Completed = false
	t.CompletionDate = nil
}

// WithPriority sets the priority.
func (t Todo) WithPriority(p Priority) Todo {
	t.Priority = &p
	return t
}

// WithCreationDate sets the creation date.
func (t Todo) WithCreationDate(d time.Time) Todo {
	t.CreationDate = &d
	return t
}

// AddContext appends a context unless it is already present.
func (t *Todo) AddContext(context string) {
	if !t.HasContext(context) {
		t.Contexts = append(t.Contexts, context)
	}
}

// AddProject appends a project unless it is already present.
func (t *Todo) AddProject(project string) {
	if !t.HasProject(project) {
		t.Projects = append(t.Projects, project)
	}
}

// AddTag sets a key:value tag, overwriting any previous value.
func (t *Todo) AddTag(key, value string) {
	if t.Tags == nil {
		t.Tags = map[string]string{}
	}
	t.Tags[key] = value
}

func (t Todo) HasContext(context string) bool {
	for _, c := range t.Contexts {
		if c == context {
			return true
		}
	}
	return false
}

func (t Todo) HasProject(project string) bool {
	for _, p := range t.Projects {
		if p == project {
			return true
		}
	}
	return false
}

func (t Todo) HasTag(key string) bool {
	_, ok := t.Tags[key]
	return ok
}

// Tag returns the value for a tag key, if present.
func (t Todo) Tag(key string) (string, bool) {
	v, ok := t.Tags[key]
	return v, ok
}

// String renders the task as a todo.txt line.
// Field order matches what Parse consumes, so lines round-trip.
func (t Todo) String() string {
	var b strings.Builder

	if t.Completed {
		b.WriteString("x")
		if t.CompletionDate != nil {
			b.WriteString(" " + date.Format(*t.CompletionDate))
		}
		if t.CreationDate != nil {
			b.WriteString(" " + date.Format(*t.CreationDate))
		}
		b.WriteString(" ")
	} else {
		// a completed task never shows its priority
		if t.Priority != nil {
			b.WriteString(t.Priority.String() + " ")
		}
		if t.CreationDate != nil {
			b.WriteString(date.Format(*t.CreationDate) + " ")
		}
	}

	b.WriteString(t.Description)

	for _, project := range t.Projects {
		b.WriteString(" +" + project)
	}
	for _, context := range t.Contexts {
		b.WriteString(" @" + context)
	}

	keys := make([]string, 0, len(t.Tags))
	for k := range t.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + ":" + t.Tags[k])
	}

	return b.String()
}
