package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLine means the parser was given empty or whitespace-only input.
	ErrEmptyLine = errors.New("cannot parse empty line")
	// ErrEmptyTask means a line had no description, contexts, or projects
	// left after structural tokens were consumed.
	ErrEmptyTask = errors.New("task content is empty")
)

// ParseError reports a line that could not be interpreted as a task.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidPriorityError reports a token that is not a valid "(X)" priority.
type InvalidPriorityError struct {
	Input string
}

func (e *InvalidPriorityError) Error() string {
	return "invalid priority: " + e.Input
}

// IndexError reports an indexed operation outside the collection bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: %d (len %d)", e.Index, e.Len)
}
