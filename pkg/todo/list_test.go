package todo

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestList_AddAndGet(t *testing.T) {
	is := is.New(t)

	l := NewList()
	is.Equal(l.Len(), 0)

	l.Add(New("Test task"))
	is.Equal(l.Len(), 1)
	is.Equal(l.Get(0).Description, "Test task")
	is.Equal(l.Get(1), nil)
	is.Equal(l.Get(-1), nil)
}

func TestList_GetMutatesInPlace(t *testing.T) {
	is := is.New(t)

	l := NewList()
	l.Add(New("Test task"))
	l.Get(0).Complete(time.Now())
	is.True(l.Get(0).Completed)
}

func TestList_Remove(t *testing.T) {
	is := is.New(t)

	l := NewList()
	l.Add(New("Task 1"))
	l.Add(New("Task 2"))

	removed, err := l.Remove(0)
	is.NoErr(err)
	is.Equal(removed.Description, "Task 1")
	is.Equal(l.Len(), 1)
	is.Equal(l.Get(0).Description, "Task 2")
}

func TestList_RemoveOutOfBounds(t *testing.T) {
	is := is.New(t)

	l := NewList()
	l.Add(New("Task 1"))

	_, err := l.Remove(3)
	var indexErr *IndexError
	is.True(errors.As(err, &indexErr))
	is.Equal(indexErr.Index, 3)
	is.Equal(indexErr.Len, 1)
}

func TestList_Filters(t *testing.T) {
	is := is.New(t)

	a, _ := NewPriority('A')

	done := New("Write minutes")
	done.AddProject("Work")
	done.Complete(day(2024, time.November, 3))

	report := New("Submit report").WithPriority(a)
	report.AddProject("Work")
	report.AddContext("office")

	l := NewList()
	l.Add(done)
	l.Add(report)
	l.Add(New("Call Mom"))

	is.Equal(len(l.Completed()), 1)
	is.Equal(len(l.Incomplete()), 2)

	work := l.WithProject("Work")
	is.Equal(len(work), 2)

	// chain: incomplete tasks within the project
	var incompleteWork []*Todo
	for _, todo := range work {
		if !todo.Completed {
			incompleteWork = append(incompleteWork, todo)
		}
	}
	is.Equal(len(incompleteWork), 1)
	is.Equal(incompleteWork[0].Description, "Submit report")

	is.Equal(len(l.WithPriority(a)), 1)
	is.Equal(len(l.WithContext("office")), 1)
	is.Equal(len(l.WithContext("phone")), 0)
}

func TestList_SortByPriority(t *testing.T) {
	is := is.New(t)

	a, _ := NewPriority('A')
	b, _ := NewPriority('B')
	c, _ := NewPriority('C')

	l := NewList()
	l.Add(New("Task C").WithPriority(c))
	l.Add(New("No priority"))
	l.Add(New("Task A").WithPriority(a))
	l.Add(New("Task B").WithPriority(b))

	l.SortByPriority()

	is.Equal(l.Get(0).Description, "Task A")
	is.Equal(l.Get(1).Description, "Task B")
	is.Equal(l.Get(2).Description, "Task C")
	is.Equal(l.Get(3).Description, "No priority")
}

func TestList_SortByCreationDate(t *testing.T) {
	is := is.New(t)

	l := NewList()
	l.Add(New("Old").WithCreationDate(day(2024, time.January, 1)))
	l.Add(New("Undated"))
	l.Add(New("New").WithCreationDate(day(2024, time.November, 1)))

	l.SortByCreationDate()

	is.Equal(l.Get(0).Description, "New")
	is.Equal(l.Get(1).Description, "Old")
	is.Equal(l.Get(2).Description, "Undated")
}

func TestList_SortByDescription(t *testing.T) {
	is := is.New(t)

	l := NewList()
	l.Add(New("banana"))
	l.Add(New("apple"))
	l.Add(New("cherry"))

	l.SortByDescription()

	is.Equal(l.Get(0).Description, "apple")
	is.Equal(l.Get(1).Description, "banana")
	is.Equal(l.Get(2).Description, "cherry")
}

func TestList_SortIsStable(t *testing.T) {
	is := is.New(t)

	a, _ := NewPriority('A')

	first := New("first").WithPriority(a)
	second := New("second").WithPriority(a)

	l := NewList()
	l.Add(first)
	l.Add(second)
	l.SortByPriority()

	is.Equal(l.Get(0).Description, "first")
	is.Equal(l.Get(1).Description, "second")
}

func TestList_SortBy(t *testing.T) {
	is := is.New(t)

	l := NewList()
	l.Add(New("aa"))
	l.Add(New("c"))
	l.Add(New("bbb"))

	l.SortBy(func(a, b *Todo) bool {
		return len(a.Description) < len(b.Description)
	})

	is.Equal(l.Get(0).Description, "c")
	is.Equal(l.Get(2).Description, "bbb")
}

func TestFromString(t *testing.T) {
	is := is.New(t)

	content := "(A) Task 1\n(B) Task 2 +Project @context\n\nx 2024-11-03 Task 3\n"
	l, warnings := FromString(content)

	is.Equal(len(warnings), 0)
	is.Equal(l.Len(), 3)
	is.True(l.Get(2).Completed)
}

func TestFromString_CollectsWarnings(t *testing.T) {
	is := is.New(t)

	content := "Task 1\ndue:2024-11-10\nTask 2"
	l, warnings := FromString(content)

	is.Equal(l.Len(), 2)
	is.Equal(len(warnings), 1)
	is.Equal(warnings[0].Line, 2)
	is.True(errors.Is(warnings[0].Err, ErrEmptyTask))
}

func TestList_String(t *testing.T) {
	is := is.New(t)

	a, _ := NewPriority('A')

	l := NewList()
	l.Add(New("Task 1").WithPriority(a))
	l.Add(New("Task 2"))

	is.Equal(l.String(), "(A) Task 1\nTask 2")
}

func TestList_StringRoundTrip(t *testing.T) {
	is := is.New(t)

	content := "(A) Task 1\nTask 2 +Project\nx 2024-11-03 Task 3"
	l, warnings := FromString(content)
	is.Equal(len(warnings), 0)
	is.Equal(l.String(), content)
}
