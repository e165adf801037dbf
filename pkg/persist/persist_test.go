package persist

import (
	"os"
	"path"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/todotxt/pkg/todo"
)

func TestText_SaveLoad(t *testing.T) {
	is := is.New(t)

	a, ok := todo.NewPriority('A')
	is.True(ok)

	report := todo.New("Submit report").WithPriority(a)
	report.AddProject("Work")
	report.AddTag("due", "2024-11-10")

	l := todo.NewList()
	l.Add(report)
	l.Add(todo.New("Call Mom"))

	text := InText(path.Join(t.TempDir(), "todo.txt"))
	is.NoErr(text.Save(l))

	loaded, warnings, err := text.Load()
	is.NoErr(err)
	is.Equal(len(warnings), 0)
	is.Equal(loaded.Len(), l.Len())
	is.Equal(loaded.String(), l.String())
}

func TestText_LoadKeepsGoodLines(t *testing.T) {
	is := is.New(t)

	file := path.Join(t.TempDir(), "todo.txt")
	content := "(A) Task 1\ndue:2024-11-10\nTask 2\n"
	is.NoErr(os.WriteFile(file, []byte(content), 0660))

	loaded, warnings, err := InText(file).Load()
	is.NoErr(err)
	is.Equal(loaded.Len(), 2)
	is.Equal(len(warnings), 1)
	is.Equal(warnings[0].Line, 2)
}

func TestText_LoadMissingFile(t *testing.T) {
	is := is.New(t)

	_, _, err := InText(path.Join(t.TempDir(), "missing.txt")).Load()
	is.True(err != nil)
	is.True(os.IsNotExist(err))
}

func TestText_SaveEmptyList(t *testing.T) {
	is := is.New(t)

	file := path.Join(t.TempDir(), "todo.txt")
	is.NoErr(InText(file).Save(todo.NewList()))

	bs, err := os.ReadFile(file)
	is.NoErr(err)
	is.Equal(string(bs), "")
}
