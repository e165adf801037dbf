// Package persist loads and saves todo lists as todo.txt files.
package persist

import (
	"os"

	"github.com/td0m/todotxt/pkg/todo"
)

type Persistor interface {
	Save(*todo.List) error
	Load() (*todo.List, []todo.Warning, error)
}

var _ Persistor = Text{}

// Text reads and writes a todo.txt file.
type Text struct {
	file string
}

func InText(file string) Text {
	return Text{file}
}

// Save writes the rendered list, overwriting the target file.
func (t Text) Save(l *todo.List) error {
	content := l.String()
	if content != "" {
		content += "\n"
	}
	return os.WriteFile(t.file, []byte(content), 0660)
}

// Load reads the whole file and parses it line by line.
// Lines that fail to parse are returned as warnings, not errors;
// only I/O failures abort the load.
func (t Text) Load() (*todo.List, []todo.Warning, error) {
	bs, err := os.ReadFile(t.file)
	if err != nil {
		return nil, nil, err
	}
	l, warnings := todo.FromString(string(bs))
	return l, warnings, nil
}
