// Package msg holds bubbletea messages shared between the checker and
// its background commands.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastMsg asks the model to show a status line for Duration.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool
}

func toast(message string, duration time.Duration, isError bool) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration, IsError: isError}
	}
}

// ShowToast reports a completed action, such as a copied color.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return toast(message, duration, false)
}

// ShowErrorToast reports a failed action in the error style.
func ShowErrorToast(message string, duration time.Duration) tea.Cmd {
	return toast(message, duration, true)
}

// ConfigChangedMsg signals that the config file was rewritten on disk.
type ConfigChangedMsg struct{}
