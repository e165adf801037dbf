package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	is.NoErr(err)
	is.Equal(cfg.TodoFile, DefaultTodoFile)
	is.Equal(cfg.AutoSave, DefaultAutoSave)
}

func TestLoad(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "todo_file = \"/tmp/tasks.txt\"\nauto_save = false\ndone_last = true\n"
	is.NoErr(os.WriteFile(path, []byte(content), 0660))

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.TodoFile, "/tmp/tasks.txt")
	is.Equal(cfg.AutoSave, false)
	is.Equal(cfg.DoneLast, true)
}

func TestLoad_InvalidTOML(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	is.NoErr(os.WriteFile(path, []byte("todo_file = [broken"), 0660))

	_, err := Load(path)
	is.True(err != nil)
}
