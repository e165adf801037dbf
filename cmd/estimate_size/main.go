package main

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"time"

	"github.com/td0m/todotxt/pkg/persist"
	"github.com/td0m/todotxt/pkg/todo"
)

// measures how large a todo.txt file gets after years of use,
// and how long saving and loading it takes

func main() {
	years := 10
	perDay := 30
	total := 365 * perDay * years
	file := path.Join(os.TempDir(), "todo.txt")
	p := persist.InText(file)

	list := todo.NewList()
	start := time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < total; i++ {
		t := todo.New("task " + randomString(20))
		t = t.WithCreationDate(start.AddDate(0, 0, i/perDay))
		t.AddProject("project" + randomString(4))
		t.AddContext("home")
		t.AddTag("due", "2024-11-10")
		if i%2 == 0 {
			t.Complete(start.AddDate(0, 0, i/perDay+1))
		}
		list.Add(t)
	}

	writeTime := measureTime(func() {
		check(p.Save(list))
	})

	var warnings []todo.Warning
	readTime := measureTime(func() {
		var err error
		_, warnings, err = p.Load()
		check(err)
	})

	info, err := os.Stat(file)
	check(err)
	fmt.Printf("Tasks: %d years, %d per day (%d total)\n", years, perDay, total)
	fmt.Printf("File size: %dMB\n", info.Size()/1024/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
	fmt.Printf("Warnings: %d\n", len(warnings))
}

const letters = "abcdefghijklmnopqrstuvwxyz"

func randomString(l int) string {
	b := make([]byte, l)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
