package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/contrast/internal/color"
	"github.com/marcus/contrast/internal/suggest"
)

// Swatch renders sample text in fg on bg, width cells wide.
func Swatch(fg, bg color.Channels, sample string, width int) string {
	if width < lipgloss.Width(sample)+2 {
		width = lipgloss.Width(sample) + 2
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(suggest.ToHex(fg))).
		Background(lipgloss.Color(suggest.ToHex(bg))).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(sample)
}

// Chip renders a small block filled with c.
func Chip(c color.Channels) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(suggest.ToHex(c))).
		Render(strings.Repeat(" ", 2))
}

// Verdict renders a PASS/FAIL badge, or a pending badge before the first
// evaluation.
func Verdict(pass, evaluated bool) string {
	switch {
	case !evaluated:
		return BadgePending.Render("----")
	case pass:
		return BadgePass.Render("PASS")
	default:
		return BadgeFail.Render("FAIL")
	}
}
