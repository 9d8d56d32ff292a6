package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/marcus/contrast/internal/color"
)

const (
	configDir  = ".config/contrast"
	configFile = "config.json"
)

var (
	testPathMu sync.RWMutex
	testPath   string
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Check  rawCheckConfig `json:"check"`
	Keymap KeymapConfig   `json:"keymap"`
	UI     rawUIConfig    `json:"ui"`
}

type rawCheckConfig struct {
	Format string `json:"format"`
	// Threshold may be a name ("normalText") or a number (4.5).
	Threshold json.RawMessage `json:"threshold"`
}

type rawUIConfig struct {
	ShowSwatch  *bool       `json:"showSwatch"`
	WatchConfig *bool       `json:"watchConfig"`
	Sample      string      `json:"sample"`
	Theme       ThemeConfig `json:"theme"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/contrast/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // Return defaults on error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := mergeConfig(cfg, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) error {
	if raw.Check.Format != "" {
		f, err := color.ParseFormat(raw.Check.Format)
		if err != nil {
			return err
		}
		cfg.Check.Format = f
	}
	if len(raw.Check.Threshold) > 0 {
		t, err := parseRawThreshold(raw.Check.Threshold)
		if err != nil {
			return err
		}
		cfg.Check.Threshold = t
	}

	// Keymap
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}

	// UI
	if raw.UI.ShowSwatch != nil {
		cfg.UI.ShowSwatch = *raw.UI.ShowSwatch
	}
	if raw.UI.WatchConfig != nil {
		cfg.UI.WatchConfig = *raw.UI.WatchConfig
	}
	if raw.UI.Sample != "" {
		cfg.UI.Sample = raw.UI.Sample
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
	for k, v := range raw.UI.Theme.Overrides {
		cfg.UI.Theme.Overrides[k] = v
	}
	return nil
}

func parseRawThreshold(data json.RawMessage) (color.Threshold, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if v, err := strconv.ParseFloat(name, 64); err == nil {
			return color.Threshold(v), nil
		}
		return color.ParseThreshold(name)
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("threshold: %w", err)
	}
	return color.Threshold(v), nil
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	testPathMu.RLock()
	p := testPath
	testPathMu.RUnlock()
	if p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// SetTestConfigPath points ConfigPath at path. Tests only.
func SetTestConfigPath(path string) {
	testPathMu.Lock()
	testPath = path
	testPathMu.Unlock()
}

// ResetTestConfigPath undoes SetTestConfigPath.
func ResetTestConfigPath() {
	SetTestConfigPath("")
}
