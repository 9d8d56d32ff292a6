package styles

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects access to themeRegistry and currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates theme colors (#RRGGBB)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	// Brand colors
	Primary string `json:"primary"`
	Accent  string `json:"accent"`

	// Verdict colors
	Pass    string `json:"pass"`
	Fail    string `json:"fail"`
	Pending string `json:"pending"`

	// Text colors
	TextPrimary string `json:"textPrimary"`
	TextMuted   string `json:"textMuted"`
	BadgeText   string `json:"badgeText"` // text drawn on pass/fail badges

	// Background and border colors
	BgPrimary    string `json:"bgPrimary"`
	BgTertiary   string `json:"bgTertiary"`
	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	// Glamour theme name for markdown reports
	MarkdownTheme string `json:"markdownTheme"`
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	// DefaultTheme is the dark theme.
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary: "#7C3AED", // Purple
			Accent:  "#F59E0B", // Amber

			Pass:    "#10B981",
			Fail:    "#EF4444",
			Pending: "#6B7280",

			TextPrimary: "#F9FAFB",
			TextMuted:   "#9CA3AF",
			BadgeText:   "#000000",

			BgPrimary:    "#111827",
			BgTertiary:   "#374151",
			BorderNormal: "#374151",
			BorderActive: "#7C3AED",

			MarkdownTheme: "dark",
		},
	}

	// DraculaTheme is a Dracula-inspired dark theme.
	DraculaTheme = Theme{
		Name:        "dracula",
		DisplayName: "Dracula",
		Colors: ColorPalette{
			Primary: "#BD93F9",
			Accent:  "#FFB86C",

			Pass:    "#50FA7B",
			Fail:    "#FF5555",
			Pending: "#6272A4",

			TextPrimary: "#F8F8F2",
			TextMuted:   "#BFBFBF",
			BadgeText:   "#282A36",

			BgPrimary:    "#282A36",
			BgTertiary:   "#44475A",
			BorderNormal: "#44475A",
			BorderActive: "#BD93F9",

			MarkdownTheme: "dracula",
		},
	}

	// LightTheme is for light terminal backgrounds.
	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary: "#6D28D9",
			Accent:  "#B45309",

			Pass:    "#047857",
			Fail:    "#B91C1C",
			Pending: "#6B7280",

			TextPrimary: "#111827",
			TextMuted:   "#4B5563",
			BadgeText:   "#FFFFFF",

			BgPrimary:    "#FFFFFF",
			BgTertiary:   "#E5E7EB",
			BorderNormal: "#D1D5DB",
			BorderActive: "#6D28D9",

			MarkdownTheme: "light",
		},
	}
)

var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"light":   LightTheme,
}

var currentTheme = "default"

// IsValidHexColor reports whether hex is a #RRGGBB theme color.
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme reports whether a theme is registered under name.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return DefaultTheme
}

// GetCurrentThemeName returns the name of the applied theme.
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns registered theme names in sorted order.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterTheme adds or replaces a theme.
func RegisterTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	themeRegistry[theme.Name] = theme
}

// ApplyTheme applies a registered theme by name.
func ApplyTheme(name string) {
	ApplyThemeWithOverrides(name, nil)
}

// ApplyThemeWithOverrides applies a theme with user color overrides from
// the config file. Unknown keys and invalid colors are ignored.
func ApplyThemeWithOverrides(name string, overrides map[string]interface{}) {
	theme := GetTheme(name)
	for key, v := range overrides {
		if s, ok := v.(string); ok {
			applySingleOverride(&theme.Colors, key, s)
		}
	}

	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

func applySingleOverride(palette *ColorPalette, key, value string) {
	if key == "markdownTheme" {
		palette.MarkdownTheme = value
		return
	}
	if !IsValidHexColor(value) {
		return
	}
	switch strings.ToLower(key) {
	case "primary":
		palette.Primary = value
	case "accent":
		palette.Accent = value
	case "pass":
		palette.Pass = value
	case "fail":
		palette.Fail = value
	case "pending":
		palette.Pending = value
	case "textprimary":
		palette.TextPrimary = value
	case "textmuted":
		palette.TextMuted = value
	case "badgetext":
		palette.BadgeText = value
	case "bgprimary":
		palette.BgPrimary = value
	case "bgtertiary":
		palette.BgTertiary = value
	case "bordernormal":
		palette.BorderNormal = value
	case "borderactive":
		palette.BorderActive = value
	}
}

// ApplyThemeColors updates the color variables and rebuilds styles.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Accent = lipgloss.Color(c.Accent)

	Pass = lipgloss.Color(c.Pass)
	Fail = lipgloss.Color(c.Fail)
	Pending = lipgloss.Color(c.Pending)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextMuted = lipgloss.Color(c.TextMuted)
	BadgeText = lipgloss.Color(c.BadgeText)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgTertiary = lipgloss.Color(c.BgTertiary)
	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)

	CurrentMarkdownTheme = c.MarkdownTheme

	rebuildStyles()
}

// GetMarkdownTheme returns the glamour style name for the current theme.
func GetMarkdownTheme() string {
	return CurrentMarkdownTheme
}
