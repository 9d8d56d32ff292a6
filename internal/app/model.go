package app

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/marcus/contrast/internal/color"
	"github.com/marcus/contrast/internal/config"
	"github.com/marcus/contrast/internal/keymap"
	"github.com/marcus/contrast/internal/styles"
	"github.com/marcus/contrast/internal/suggest"
	"github.com/marcus/contrast/internal/tracker"
)

const (
	inputForeground = iota
	inputBackground
	inputCount
)

// Model is the interactive contrast checker. Every update feeds the
// current inputs into a tracker, which keeps the last verdict.
type Model struct {
	cfg     *config.Config
	cfgPath string
	keys    *keymap.Registry

	inputs [inputCount]textinput.Model
	focus  int

	format color.Format
	level  int // index into color.Levels

	tracker    tracker.Tracker
	suggestion color.Channels
	hasSuggest bool

	themeNames []string
	themeName  string // chosen by flag or in-session; outranks the config theme
	showHelp   bool

	// Config file watcher; nil when watching is off
	configChanges <-chan struct{}

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	width  int
	height int

	// writeClipboard is swapped out in tests.
	writeClipboard func(string) error
}

// Option configures a Model.
type Option func(*Model)

// WithConfigChanges makes the model reload its config whenever ch fires.
func WithConfigChanges(ch <-chan struct{}) Option {
	return func(m *Model) {
		m.configChanges = ch
	}
}

// WithTheme pins the theme so config reloads do not replace it.
func WithTheme(name string) Option {
	return func(m *Model) {
		m.themeName = name
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.writeClipboard = write
	}
}

// New creates the checker seeded with q. Empty fields in q fall back to
// the configured defaults.
func New(cfg *config.Config, cfgPath string, keys *keymap.Registry, q color.Query, opts ...Option) Model {
	if keys == nil {
		keys = keymap.NewRegistry()
		keymap.RegisterDefaults(keys)
	}
	m := Model{
		cfg:            cfg,
		cfgPath:        cfgPath,
		keys:           keys,
		format:         cfg.Check.Format,
		themeNames:     styles.ListThemes(),
		writeClipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if q.Format != "" {
		m.format = q.Format
	}
	threshold := cfg.Check.Threshold
	if q.Threshold != 0 {
		threshold = q.Threshold
	}
	m.level = levelIndex(threshold)

	placeholders := [inputCount]string{"#767676", "#ffffff"}
	values := [inputCount]string{q.Foreground, q.Background}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 24
		ti.Width = 22
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[inputForeground].Focus()

	m.recompute()
	return m
}

// levelIndex returns the most demanding named level at t, defaulting
// to normal text.
func levelIndex(t color.Threshold) int {
	idx := len(color.Levels) - 1
	for i, l := range color.Levels {
		if l.Threshold == t {
			idx = i
		}
	}
	return idx
}

// Query returns the check described by the current inputs.
func (m Model) Query() color.Query {
	return color.Query{
		Foreground: m.inputs[inputForeground].Value(),
		Background: m.inputs[inputBackground].Value(),
		Format:     m.format,
		Threshold:  color.Levels[m.level].Threshold,
	}
}

// Verdict returns the tracked verdict.
func (m Model) Verdict() bool {
	return m.tracker.Verdict()
}

// recompute pushes the current inputs through the tracker and refreshes
// the suggestion.
func (m *Model) recompute() {
	m.tracker.Set(m.Query())

	m.hasSuggest = false
	res, err := m.tracker.Last()
	if err != nil || res.Pass {
		return
	}
	if fg, ok := suggest.EnsureContrast(res.Foreground, res.Background, res.Query.Threshold); ok {
		m.suggestion = fg
		m.hasSuggest = true
	}
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}
