// Package config handles configuration loading and defaults for the TUI.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTodoFile = "todo.txt"
	DefaultAutoSave = true
)

// Config holds the full configuration for the TUI.
type Config struct {
	// TodoFile is the todo.txt file to open.
	TodoFile string `toml:"todo_file"`

	// AutoSave writes the file after every mutation instead of on quit.
	AutoSave bool `toml:"auto_save"`

	// DoneLast keeps completed tasks at the bottom of the All tab.
	DoneLast bool `toml:"done_last"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TodoFile: DefaultTodoFile,
		AutoSave: DefaultAutoSave,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todotxt.toml"
	}
	return filepath.Join(home, ".todotxt.toml")
}

// Load reads a TOML config file, falling back to defaults for anything
// unset. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	bs, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(bs, cfg); err != nil {
		return nil, err
	}
	if cfg.TodoFile == "" {
		cfg.TodoFile = DefaultTodoFile
	}
	return cfg, nil
}
