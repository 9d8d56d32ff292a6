// Package report renders contrast results for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/marcus/contrast/internal/color"
	"github.com/marcus/contrast/internal/suggest"
	"github.com/mattn/go-runewidth"
)

// Level is the verdict for one named WCAG threshold.
type Level struct {
	Name      string          `json:"name"`
	Threshold color.Threshold `json:"threshold"`
	Pass      bool            `json:"pass"`
}

// Report is a contrast result plus derived information.
type Report struct {
	Result     color.Result `json:"result"`
	Levels     []Level      `json:"levels"`
	Suggestion string       `json:"suggestion,omitempty"`
}

// New builds a report for res. When withSuggestion is set and res fails,
// the nearest passing foreground is included.
func New(res color.Result, withSuggestion bool) Report {
	r := Report{Result: res}
	for _, l := range color.Levels {
		r.Levels = append(r.Levels, Level{
			Name:      l.Name,
			Threshold: l.Threshold,
			Pass:      color.MeetsThreshold(res.Ratio, l.Threshold),
		})
	}
	if withSuggestion && !res.Pass {
		if fg, ok := suggest.EnsureContrast(res.Foreground, res.Background, res.Query.Threshold); ok {
			r.Suggestion = suggest.ToHex(fg)
		}
	}
	return r
}

func verdictWord(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}

// Text renders an aligned plain-text table.
func (r Report) Text() string {
	res := r.Result
	rows := [][2]string{
		{"foreground", fmt.Sprintf("%s  %s  L=%.4f", res.Query.Foreground, res.Foreground, res.ForegroundLuminance)},
		{"background", fmt.Sprintf("%s  %s  L=%.4f", res.Query.Background, res.Background, res.BackgroundLuminance)},
		{"ratio", fmt.Sprintf("%.2f:1", res.Ratio)},
	}
	for _, l := range r.Levels {
		rows = append(rows, [2]string{l.Name, fmt.Sprintf("%s (>= %.1f)", verdictWord(l.Pass), float64(l.Threshold))})
	}
	if r.Suggestion != "" {
		rows = append(rows, [2]string{"suggestion", r.Suggestion})
	}

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", strings.ToUpper(verdictWord(res.Pass)), res.Query.Threshold.Name())
	for _, row := range rows {
		sb.WriteString("  ")
		sb.WriteString(runewidth.FillRight(row[0], width))
		sb.WriteString("  ")
		sb.WriteString(row[1])
		sb.WriteString("\n")
	}
	return sb.String()
}

// JSON renders the report as indented JSON.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	res := r.Result
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Contrast %.2f:1 (%s)\n\n", res.Ratio, strings.ToUpper(verdictWord(res.Pass)))
	fmt.Fprintf(&sb, "Checked against **%s** (%.1f:1).\n\n", res.Query.Threshold.Name(), float64(res.Query.Threshold))
	sb.WriteString("| | color | channels | luminance |\n|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| foreground | `%s` | %s | %.4f |\n", res.Query.Foreground, res.Foreground, res.ForegroundLuminance)
	fmt.Fprintf(&sb, "| background | `%s` | %s | %.4f |\n\n", res.Query.Background, res.Background, res.BackgroundLuminance)
	sb.WriteString("| level | minimum | verdict |\n|---|---|---|\n")
	for _, l := range r.Levels {
		fmt.Fprintf(&sb, "| %s | %.1f | %s |\n", l.Name, float64(l.Threshold), verdictWord(l.Pass))
	}
	if r.Suggestion != "" {
		fmt.Fprintf(&sb, "\nTry `%s` as the foreground.\n", r.Suggestion)
	}
	return sb.String()
}

// RenderMarkdown renders the markdown report for a terminal using the
// named glamour style.
func (r Report) RenderMarkdown(style string, wrap int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return renderer.Render(r.Markdown())
}
