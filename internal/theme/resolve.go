package theme

import (
	"log/slog"

	"github.com/marcus/contrast/internal/config"
	"github.com/marcus/contrast/internal/styles"
)

// ResolvedTheme represents a fully-determined theme configuration.
type ResolvedTheme struct {
	Name      string
	Overrides map[string]interface{}
}

// Resolve determines the effective theme.
// Priority: explicit name > config UI.Theme > "default".
// Overrides from the config only apply when the config theme wins.
func Resolve(cfg *config.Config, explicit string) ResolvedTheme {
	resolved := ResolvedTheme{Name: "default"}
	if cfg != nil && cfg.UI.Theme.Name != "" {
		resolved.Name = cfg.UI.Theme.Name
		resolved.Overrides = cfg.UI.Theme.Overrides
	}
	if explicit != "" && explicit != resolved.Name {
		resolved.Name = explicit
		resolved.Overrides = nil
	}
	return resolved
}

// Apply applies a resolved theme to the styles system.
func Apply(r ResolvedTheme) {
	if !styles.IsValidTheme(r.Name) {
		slog.Warn("unknown theme, using default", "theme", r.Name)
	}
	if len(r.Overrides) > 0 {
		styles.ApplyThemeWithOverrides(r.Name, r.Overrides)
	} else {
		styles.ApplyTheme(r.Name)
	}
}
