package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/contrast/internal/msg"
)

// TickMsg drives toast expiry.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForConfigChange blocks until the watcher fires. It returns nil
// once the watcher is closed, which ends the loop.
func waitForConfigChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return msg.ConfigChangedMsg{}
	}
}

// Init starts the cursor blink, the toast ticker and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		waitForConfigChange(m.configChanges),
	)
}
