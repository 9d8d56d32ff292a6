package theme

import (
	"testing"

	"github.com/marcus/contrast/internal/config"
	"github.com/marcus/contrast/internal/styles"
)

func TestResolve(t *testing.T) {
	overrides := map[string]interface{}{"primary": "#112233"}

	tests := []struct {
		name     string
		cfg      *config.Config
		explicit string
		wantName string
		wantOver bool
	}{
		{
			name:     "nil config",
			wantName: "default",
		},
		{
			name:     "config theme",
			cfg:      &config.Config{UI: config.UIConfig{Theme: config.ThemeConfig{Name: "dracula"}}},
			wantName: "dracula",
		},
		{
			name:     "config overrides carried",
			cfg:      &config.Config{UI: config.UIConfig{Theme: config.ThemeConfig{Name: "dracula", Overrides: overrides}}},
			wantName: "dracula",
			wantOver: true,
		},
		{
			name:     "explicit wins and drops overrides",
			cfg:      &config.Config{UI: config.UIConfig{Theme: config.ThemeConfig{Name: "dracula", Overrides: overrides}}},
			explicit: "light",
			wantName: "light",
		},
		{
			name:     "explicit matching config keeps overrides",
			cfg:      &config.Config{UI: config.UIConfig{Theme: config.ThemeConfig{Name: "light", Overrides: overrides}}},
			explicit: "light",
			wantName: "light",
			wantOver: true,
		},
		{
			name:     "empty config name falls back",
			cfg:      &config.Config{},
			wantName: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.cfg, tt.explicit)
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if (len(got.Overrides) > 0) != tt.wantOver {
				t.Errorf("Overrides = %v, want present=%v", got.Overrides, tt.wantOver)
			}
		})
	}
}

func TestApply(t *testing.T) {
	defer styles.ApplyTheme("default")

	Apply(ResolvedTheme{Name: "dracula"})
	if got := styles.GetCurrentThemeName(); got != "dracula" {
		t.Errorf("current theme = %q, want dracula", got)
	}

	Apply(ResolvedTheme{Name: "light", Overrides: map[string]interface{}{"primary": "#123456"}})
	if got := styles.GetCurrentThemeName(); got != "light" {
		t.Errorf("current theme = %q, want light", got)
	}
}
