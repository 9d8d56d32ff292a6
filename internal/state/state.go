package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/marcus/contrast/internal/color"
)

// State holds persistent user preferences.
type State struct {
	// Last inputs typed into the interactive checker
	Foreground string          `json:"foreground,omitempty"`
	Background string          `json:"background,omitempty"`
	Format     color.Format    `json:"format,omitempty"`
	Threshold  color.Threshold `json:"threshold,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "contrast"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	mu.Lock()
	path = filepath.Join(dir, "state.json")
	mu.Unlock()
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil || path == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetLastQuery returns the saved inputs. ok is false when nothing has
// been saved yet.
func GetLastQuery() (q color.Query, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil || (current.Foreground == "" && current.Background == "") {
		return color.Query{}, false
	}
	return color.Query{
		Foreground: current.Foreground,
		Background: current.Background,
		Format:     current.Format,
		Threshold:  current.Threshold,
	}, true
}

// SetLastQuery saves the inputs of the interactive checker.
func SetLastQuery(q color.Query) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.Foreground = q.Foreground
	current.Background = q.Background
	current.Format = q.Format
	current.Threshold = q.Threshold
	mu.Unlock()
	return Save()
}
