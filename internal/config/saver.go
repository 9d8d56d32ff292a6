package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Save writes the config to ConfigPath. Keys in an existing file that
// this package does not manage are preserved.
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	merged := make(map[string]json.RawMessage)
	if data, err := os.ReadFile(path); err == nil {
		// A corrupt file is overwritten rather than blocking the save.
		_ = json.Unmarshal(data, &merged)
	}

	check, err := json.Marshal(cfg.Check)
	if err != nil {
		return err
	}
	keymap, err := json.Marshal(cfg.Keymap)
	if err != nil {
		return err
	}
	ui, err := json.Marshal(cfg.UI)
	if err != nil {
		return err
	}
	merged["check"] = check
	merged["keymap"] = keymap
	merged["ui"] = ui

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveTheme updates only the theme name in config and saves.
func SaveTheme(themeName string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = nil
	return Save(cfg)
}

// SaveDefaults stores the format and threshold used for new checks.
func SaveDefaults(check CheckConfig) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.Check = check
	return Save(cfg)
}
