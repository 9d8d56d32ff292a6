package keymap

// Binding maps a key to a command.
type Binding struct {
	Key     string
	Command string
}

// Commands understood by the checker.
const (
	CmdQuit           = "quit"
	CmdNextInput      = "next-input"
	CmdPrevInput      = "prev-input"
	CmdToggleFormat   = "toggle-format"
	CmdCycleThreshold = "cycle-threshold"
	CmdSwapColors     = "swap-colors"
	CmdCopySuggestion = "copy-suggestion"
	CmdApplySuggest   = "apply-suggestion"
	CmdNextTheme      = "next-theme"
	CmdToggleHelp     = "toggle-help"
)

// DefaultBindings returns the default key bindings. Plain letters are
// left alone because they are typed into the color inputs.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "ctrl+c", Command: CmdQuit},
		{Key: "esc", Command: CmdQuit},
		{Key: "tab", Command: CmdNextInput},
		{Key: "down", Command: CmdNextInput},
		{Key: "shift+tab", Command: CmdPrevInput},
		{Key: "up", Command: CmdPrevInput},
		{Key: "ctrl+f", Command: CmdToggleFormat},
		{Key: "ctrl+t", Command: CmdCycleThreshold},
		{Key: "ctrl+s", Command: CmdSwapColors},
		{Key: "ctrl+y", Command: CmdCopySuggestion},
		{Key: "ctrl+a", Command: CmdApplySuggest},
		{Key: "ctrl+n", Command: CmdNextTheme},
		{Key: "f1", Command: CmdToggleHelp},
	}
}
