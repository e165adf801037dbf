package todo

import (
	"strings"

	"github.com/td0m/todotxt/pkg/todo/date"
)

// Parse parses a single todo.txt line.
//
// Tokens are consumed left to right: completion marker, completion date,
// priority, creation date. Everything after that is classified by shape
// (@context, +project, key:value tag) rather than position. Tokens that
// look like a date or priority but fail validation are not errors; they
// fall through to the description.
func Parse(line string) (Todo, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Todo{}, &ParseError{Line: line, Err: ErrEmptyLine}
	}

	t := New("")
	parts := strings.Fields(line)
	i := 0

	if parts[i] == "x" {
		t.Completed = true
		i++

		if i < len(parts) {
			if d, err := date.Parse(parts[i]); err == nil {
				t.CompletionDate = &d
				i++
			}
		}
	}

	// priority is only recognised on incomplete tasks
	if !t.Completed && i < len(parts) {
		s := parts[i]
		if len(s) == 3 && s[0] == '(' && s[2] == ')' {
			if p, err := ParsePriority(s); err == nil {
				t.Priority = &p
				i++
			}
		}
	}

	if i < len(parts) {
		if d, err := date.Parse(parts[i]); err == nil {
			t.CreationDate = &d
			i++
		}
	}

	var description []string
	for ; i < len(parts); i++ {
		part := parts[i]
		switch {
		case strings.HasPrefix(part, "@") && len(part) > 1:
			t.Contexts = append(t.Contexts, part[1:])
		case strings.HasPrefix(part, "+") && len(part) > 1:
			t.Projects = append(t.Projects, part[1:])
		case isTag(part):
			colon := strings.Index(part, ":")
			t.Tags[part[:colon]] = part[colon+1:]
		default:
			description = append(description, part)
		}
	}

	t.Description = strings.Join(description, " ")

	if t.Description == "" && len(t.Contexts) == 0 && len(t.Projects) == 0 {
		return Todo{}, &ParseError{Line: line, Err: ErrEmptyTask}
	}

	return t, nil
}

// isTag reports whether a token is a key:value tag: split on the first
// colon, both halves non-empty and free of whitespace.
func isTag(part string) bool {
	colon := strings.Index(part, ":")
	if colon < 0 {
		return false
	}
	key, value := part[:colon], part[colon+1:]
	if key == "" || value == "" {
		return false
	}
	return !strings.ContainsAny(key, " \t") && !strings.ContainsAny(value, " \t")
}
