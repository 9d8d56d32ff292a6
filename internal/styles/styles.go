package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#F59E0B") // Amber

	// Verdict colors
	Pass    = lipgloss.Color("#10B981") // Green
	Fail    = lipgloss.Color("#EF4444") // Red
	Pending = lipgloss.Color("#6B7280") // Gray

	// Text colors
	TextPrimary = lipgloss.Color("#F9FAFB")
	TextMuted   = lipgloss.Color("#9CA3AF")
	BadgeText   = lipgloss.Color("#000000")

	// Background and border colors
	BgPrimary    = lipgloss.Color("#111827")
	BgTertiary   = lipgloss.Color("#374151")
	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	CurrentMarkdownTheme = "dark"
)

// Panel styles
var (
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Code = lipgloss.NewStyle().
		Foreground(Accent)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)
)

// Verdict badges
var (
	BadgePass = lipgloss.NewStyle().
			Background(Pass).
			Foreground(BadgeText).
			Bold(true).
			Padding(0, 1)

	BadgeFail = lipgloss.NewStyle().
			Background(Fail).
			Foreground(BadgeText).
			Bold(true).
			Padding(0, 1)

	BadgePending = lipgloss.NewStyle().
			Background(Pending).
			Foreground(BadgeText).
			Padding(0, 1)

	// Toast styles for status messages
	ToastSuccess = lipgloss.NewStyle().
			Foreground(Pass).
			Bold(true)

	ToastError = lipgloss.NewStyle().
			Foreground(Fail).
			Bold(true)
)

// rebuildStyles recreates every style that captured a palette color.
func rebuildStyles() {
	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)
	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Body = lipgloss.NewStyle().Foreground(TextPrimary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Code = lipgloss.NewStyle().Foreground(Accent)
	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	BadgePass = lipgloss.NewStyle().Background(Pass).Foreground(BadgeText).Bold(true).Padding(0, 1)
	BadgeFail = lipgloss.NewStyle().Background(Fail).Foreground(BadgeText).Bold(true).Padding(0, 1)
	BadgePending = lipgloss.NewStyle().Background(Pending).Foreground(BadgeText).Padding(0, 1)

	ToastSuccess = lipgloss.NewStyle().Foreground(Pass).Bold(true)
	ToastError = lipgloss.NewStyle().Foreground(Fail).Bold(true)
}
