package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/contrast/internal/color"
	"github.com/marcus/contrast/internal/config"
	"github.com/marcus/contrast/internal/keymap"
	"github.com/marcus/contrast/internal/msg"
	"github.com/marcus/contrast/internal/styles"
	"github.com/marcus/contrast/internal/suggest"
	"github.com/marcus/contrast/internal/theme"
)

// Update handles all messages.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case msg.ToastMsg:
		m.ShowToast(message.Message, message.Duration, message.IsError)
		return m, nil

	case msg.ConfigChangedMsg:
		cmd := m.reloadConfig()
		return m, tea.Batch(cmd, waitForConfigChange(m.configChanges))
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(message)
	return m, cmd
}

func (m Model) handleKeyMsg(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keys.Lookup(key.String()); ok {
		return m.runCommand(cmd)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	m.recompute()
	return m, cmd
}

func (m Model) runCommand(name string) (tea.Model, tea.Cmd) {
	switch name {
	case keymap.CmdQuit:
		return m, tea.Quit

	case keymap.CmdNextInput:
		m.setFocus((m.focus + 1) % inputCount)

	case keymap.CmdPrevInput:
		m.setFocus((m.focus + inputCount - 1) % inputCount)

	case keymap.CmdToggleFormat:
		if m.format == color.RGB {
			m.format = color.Hex
		} else {
			m.format = color.RGB
		}
		m.recompute()

	case keymap.CmdCycleThreshold:
		m.level = (m.level + 1) % len(color.Levels)
		m.recompute()

	case keymap.CmdSwapColors:
		fg := m.inputs[inputForeground].Value()
		m.inputs[inputForeground].SetValue(m.inputs[inputBackground].Value())
		m.inputs[inputBackground].SetValue(fg)
		m.recompute()

	case keymap.CmdCopySuggestion:
		if !m.hasSuggest {
			return m, nil
		}
		hex := suggest.ToHex(m.suggestion)
		if err := m.writeClipboard(hex); err != nil {
			return m, msg.ShowErrorToast("Copy failed: "+err.Error(), 2*time.Second)
		}
		return m, msg.ShowToast("Copied "+hex, 2*time.Second)

	case keymap.CmdApplySuggest:
		if !m.hasSuggest {
			return m, nil
		}
		m.inputs[inputForeground].SetValue(m.formatColor(m.suggestion))
		m.recompute()

	case keymap.CmdNextTheme:
		m.nextTheme()

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// formatColor writes c in the current input format.
func (m Model) formatColor(c color.Channels) string {
	if m.format == color.RGB {
		return c.String()
	}
	return suggest.ToHex(c)
}

func (m *Model) nextTheme() {
	if len(m.themeNames) == 0 {
		return
	}
	current := styles.GetCurrentThemeName()
	next := m.themeNames[0]
	for i, name := range m.themeNames {
		if name == current {
			next = m.themeNames[(i+1)%len(m.themeNames)]
			break
		}
	}
	m.themeName = next
	styles.ApplyTheme(next)
	m.ShowToast("Theme: "+styles.GetTheme(next).DisplayName, 2*time.Second, false)
}

// reloadConfig re-reads the config file and applies theme, keymap and
// default changes. Inputs typed by the user are left alone.
func (m *Model) reloadConfig() tea.Cmd {
	cfg, err := config.LoadFrom(m.cfgPath)
	if err != nil {
		slog.Warn("config reload failed", "path", m.cfgPath, "err", err)
		return msg.ShowErrorToast(fmt.Sprintf("Config reload failed: %v", err), 3*time.Second)
	}

	formatChanged := cfg.Check.Format != m.cfg.Check.Format
	thresholdChanged := cfg.Check.Threshold != m.cfg.Check.Threshold
	m.cfg = cfg

	theme.Apply(theme.Resolve(cfg, m.themeName))
	m.keys.ResetOverrides()
	for key, cmd := range cfg.Keymap.Overrides {
		m.keys.SetUserOverride(key, cmd)
	}
	if formatChanged {
		m.format = cfg.Check.Format
	}
	if thresholdChanged {
		m.level = levelIndex(cfg.Check.Threshold)
	}
	m.recompute()

	slog.Debug("config reloaded", "path", m.cfgPath)
	return msg.ShowToast("Config reloaded", 2*time.Second)
}
