package config

import (
	"fmt"
	"log/slog"

	"github.com/marcus/contrast/internal/color"
)

// Config is the root configuration structure.
type Config struct {
	Check  CheckConfig  `json:"check"`
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// CheckConfig holds the defaults used when a flag or the TUI does not
// say otherwise.
type CheckConfig struct {
	Format    color.Format    `json:"format"`    // "hex" or "rgb"
	Threshold color.Threshold `json:"threshold"` // 3.1 or 4.5
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowSwatch  bool        `json:"showSwatch"`
	WatchConfig bool        `json:"watchConfig"` // reload this file while the TUI runs
	Sample      string      `json:"sample"`      // text drawn inside the swatch
	Theme       ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string                 `json:"name"`
	Overrides map[string]interface{} `json:"overrides,omitempty"` // user customizations on top
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Check: CheckConfig{
			Format:    color.Hex,
			Threshold: color.NormalText,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowSwatch:  true,
			WatchConfig: true,
			Sample:      "The quick brown fox",
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]interface{}),
			},
		},
	}
}

// Validate checks the configuration for errors. Out-of-range values are
// reset to their defaults rather than rejected.
func (c *Config) Validate() error {
	if c.Check.Format != color.Hex && c.Check.Format != color.RGB {
		slog.Warn("unknown color format in config, using hex", "format", c.Check.Format)
		c.Check.Format = color.Hex
	}
	switch c.Check.Threshold {
	case color.NormalText, color.LargeText:
	default:
		slog.Warn("unsupported threshold in config, using normalText", "threshold", float64(c.Check.Threshold))
		c.Check.Threshold = color.NormalText
	}
	if c.UI.Sample == "" {
		c.UI.Sample = Default().UI.Sample
	}
	if c.UI.Theme.Name == "" {
		return fmt.Errorf("ui.theme.name must not be empty")
	}
	return nil
}
