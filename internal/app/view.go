package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/contrast/internal/color"
	"github.com/marcus/contrast/internal/keymap"
	"github.com/marcus/contrast/internal/styles"
	"github.com/marcus/contrast/internal/suggest"
)

const (
	labelWidth  = 12
	swatchWidth = 36
)

// View renders the checker.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Contrast"))
	sb.WriteString(styles.Muted.Render("  " + styles.GetTheme(styles.GetCurrentThemeName()).DisplayName))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderInput(inputForeground, "Foreground"))
	sb.WriteString("\n")
	sb.WriteString(m.renderInput(inputBackground, "Background"))
	sb.WriteString("\n\n")

	level := color.Levels[m.level]
	fmt.Fprintf(&sb, "%s%s   %s%s\n",
		styles.Muted.Render(pad("Format")), styles.Code.Render(string(m.format)),
		styles.Muted.Render("Threshold "), styles.Code.Render(fmt.Sprintf("%s (%.1f:1)", level.Name, float64(level.Threshold))))
	sb.WriteString("\n")

	sb.WriteString(m.renderResult())

	if m.statusMsg != "" {
		toastStyle := styles.ToastSuccess
		if m.statusIsError {
			toastStyle = styles.ToastError
		}
		sb.WriteString("\n")
		sb.WriteString(toastStyle.Render(m.statusMsg))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderHelp())

	panel := styles.PanelActive.Render(sb.String())
	if m.width > 0 {
		lines := strings.Split(panel, "\n")
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "")
		}
		panel = strings.Join(lines, "\n")
	}
	return panel
}

func pad(label string) string {
	return fmt.Sprintf("%-*s", labelWidth, label)
}

func (m Model) renderInput(i int, label string) string {
	style := styles.Muted
	if i == m.focus {
		style = styles.Body.Bold(true)
	}
	line := style.Render(pad(label)) + m.inputs[i].View()

	if c, ok := color.Parse(m.inputs[i].Value(), m.format); ok {
		line += " " + styles.Chip(c)
	}
	return line
}

func (m Model) renderResult() string {
	var sb strings.Builder

	res, err := m.tracker.Last()
	evaluated := m.tracker.Evaluated()

	if m.cfg.UI.ShowSwatch && evaluated && err == nil {
		sb.WriteString(styles.Swatch(res.Foreground, res.Background, m.cfg.UI.Sample, swatchWidth))
		sb.WriteString("\n\n")
	}

	ratio := "--"
	if evaluated && err == nil {
		ratio = fmt.Sprintf("%.2f:1", res.Ratio)
	}
	fmt.Fprintf(&sb, "%s%s  %s\n", styles.Muted.Render(pad("Ratio")), styles.Body.Render(ratio), styles.Verdict(m.tracker.Verdict(), evaluated))

	if evaluated && err == nil {
		var parts []string
		for _, l := range color.Levels {
			mark := styles.BadgeFail.Render("x")
			if color.MeetsThreshold(res.Ratio, l.Threshold) {
				mark = styles.BadgePass.Render("ok")
			}
			parts = append(parts, l.Name+" "+mark)
		}
		sb.WriteString(styles.Muted.Render(pad("Levels")))
		sb.WriteString(strings.Join(parts, "  "))
		sb.WriteString("\n")
	}

	if err != nil && m.tracker.Inputs().Foreground != "" && m.tracker.Inputs().Background != "" {
		sb.WriteString(styles.ToastError.Render(err.Error()))
		sb.WriteString("\n")
	}

	if m.hasSuggest {
		hint := strings.Join(m.keys.KeysFor(keymap.CmdCopySuggestion), "/")
		fmt.Fprintf(&sb, "%s%s %s  %s\n",
			styles.Muted.Render(pad("Suggestion")),
			styles.Chip(m.suggestion),
			styles.Code.Render(suggest.ToHex(m.suggestion)),
			styles.Muted.Render(hint+" to copy"))
	}
	return sb.String()
}

func (m Model) renderHelp() string {
	if !m.showHelp {
		keys := m.keys.KeysFor(keymap.CmdToggleHelp)
		if len(keys) == 0 {
			return ""
		}
		return styles.KeyHint.Render(keys[0]) + styles.Muted.Render(" help")
	}

	entries := []struct{ cmd, desc string }{
		{keymap.CmdNextInput, "next input"},
		{keymap.CmdToggleFormat, "hex/rgb"},
		{keymap.CmdCycleThreshold, "threshold"},
		{keymap.CmdSwapColors, "swap"},
		{keymap.CmdCopySuggestion, "copy suggestion"},
		{keymap.CmdApplySuggest, "use suggestion"},
		{keymap.CmdNextTheme, "theme"},
		{keymap.CmdQuit, "quit"},
	}
	var rows []string
	for _, e := range entries {
		keys := m.keys.KeysFor(e.cmd)
		if len(keys) == 0 {
			continue
		}
		rows = append(rows, styles.KeyHint.Render(strings.Join(keys, "/"))+" "+styles.Muted.Render(e.desc))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
