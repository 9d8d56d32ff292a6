package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/contrast/internal/app"
	"github.com/marcus/contrast/internal/color"
	"github.com/marcus/contrast/internal/config"
	"github.com/marcus/contrast/internal/keymap"
	"github.com/marcus/contrast/internal/report"
	"github.com/marcus/contrast/internal/state"
	"github.com/marcus/contrast/internal/styles"
	"github.com/marcus/contrast/internal/theme"
	"github.com/marcus/contrast/internal/version"
)

// Version is set at build time via ldflags
var Version = ""

// Exit codes for one-shot checks.
const (
	exitPass    = 0
	exitFail    = 1
	exitInvalid = 2
)

type options struct {
	configPath  string
	fg          string
	bg          string
	format      string
	threshold   string
	themeName   string
	debug       bool
	version     bool
	jsonOut     bool
	markdownOut bool
	withSuggest bool
	interactive bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	fs := flag.NewFlagSet("contrast", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to config file")
	fs.StringVar(&opts.fg, "fg", "", "foreground color (#rrggbb, #rgb or \"rgb(r, g, b)\")")
	fs.StringVar(&opts.bg, "bg", "", "background color")
	fs.StringVar(&opts.format, "format", "", "color format: hex or rgb (default from config)")
	fs.StringVar(&opts.threshold, "threshold", "", "icon, largeText or normalText (default from config)")
	fs.StringVar(&opts.themeName, "theme", "", "color theme (overrides config)")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	fs.BoolVar(&opts.version, "v", false, "print version and exit (short)")
	fs.BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")
	fs.BoolVar(&opts.markdownOut, "markdown", false, "print the result as rendered markdown")
	fs.BoolVar(&opts.withSuggest, "suggest", false, "suggest a passing foreground when the check fails")
	fs.BoolVar(&opts.interactive, "tui", false, "open the interactive checker")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: contrast [options] [foreground background]\n\n")
		fmt.Fprintf(stderr, "Checks two colors against the WCAG contrast thresholds.\n")
		fmt.Fprintf(stderr, "Without colors, opens the interactive checker.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitPass
		}
		return exitInvalid
	}

	if opts.version {
		method := version.DetectInstallMethod()
		fmt.Fprintln(stdout, version.Describe(version.Effective(Version), method))
		if opts.debug {
			fmt.Fprintf(stdout, "upgrade: %s\n", version.UpgradeCommand(method))
		}
		return exitPass
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if opts.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfgPath := config.ExpandPath(opts.configPath)
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitInvalid
	}
	theme.Apply(theme.Resolve(cfg, opts.themeName))

	q, err := buildQuery(opts, rest, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitInvalid
	}

	if opts.interactive || q.Foreground == "" || q.Background == "" {
		return runInteractive(cfg, cfgPath, q, opts, logger, stderr)
	}
	return runCheck(q, opts, stdout, stderr)
}

// buildQuery merges positional colors, flags and config defaults.
func buildQuery(opts *options, rest []string, cfg *config.Config) (color.Query, error) {
	q := color.Query{
		Foreground: opts.fg,
		Background: opts.bg,
		Format:     cfg.Check.Format,
		Threshold:  cfg.Check.Threshold,
	}
	switch len(rest) {
	case 0:
	case 2:
		if q.Foreground != "" || q.Background != "" {
			return q, fmt.Errorf("colors given both as flags and arguments")
		}
		q.Foreground, q.Background = rest[0], rest[1]
	default:
		return q, fmt.Errorf("expected two colors, got %d arguments", len(rest))
	}

	if opts.format != "" {
		f, err := color.ParseFormat(opts.format)
		if err != nil {
			return q, err
		}
		q.Format = f
	}
	if opts.threshold != "" {
		t, err := color.ParseThreshold(opts.threshold)
		if err != nil {
			return q, err
		}
		q.Threshold = t
	}
	return q, nil
}

func runCheck(q color.Query, opts *options, stdout, stderr io.Writer) int {
	slog.Debug("checking contrast", "fg", q.Foreground, "bg", q.Background, "format", q.Format, "threshold", float64(q.Threshold))

	res, err := color.Check(q)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitInvalid
	}

	rep := report.New(res, opts.withSuggest)
	switch {
	case opts.jsonOut:
		data, err := rep.JSON()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to encode result: %v\n", err)
			return exitInvalid
		}
		fmt.Fprintln(stdout, string(data))
	case opts.markdownOut:
		out, err := rep.RenderMarkdown(styles.GetMarkdownTheme(), 80)
		if err != nil {
			slog.Warn("markdown rendering failed, printing raw markdown", "err", err)
			out = rep.Markdown()
		}
		fmt.Fprint(stdout, out)
	default:
		fmt.Fprint(stdout, rep.Text())
	}

	if res.Pass {
		return exitPass
	}
	return exitFail
}

func runInteractive(cfg *config.Config, cfgPath string, q color.Query, opts *options, logger *slog.Logger, stderr io.Writer) int {
	// Load persistent state (ignore errors - state is optional)
	if err := state.Init(); err != nil {
		logger.Debug("state unavailable", "err", err)
	}
	if q.Foreground == "" && q.Background == "" {
		if last, ok := state.GetLastQuery(); ok {
			last.Format = pick(opts.format != "", q.Format, last.Format)
			last.Threshold = pickThreshold(opts.threshold != "", q.Threshold, last.Threshold)
			q = last
		}
	}

	keys := keymap.NewRegistry()
	keymap.RegisterDefaults(keys)
	for key, cmdID := range cfg.Keymap.Overrides {
		keys.SetUserOverride(key, cmdID)
	}

	appOpts := []app.Option{app.WithTheme(opts.themeName)}
	if cfg.UI.WatchConfig {
		changes, closer, err := config.Watch(cfgPath)
		if err != nil {
			logger.Debug("config watch disabled", "path", cfgPath, "err", err)
		} else {
			defer closer.Close()
			appOpts = append(appOpts, app.WithConfigChanges(changes))
		}
	}

	model := app.New(cfg, cfgPath, keys, q, appOpts...)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Error running application: %v\n", err)
		return exitInvalid
	}

	if fm, ok := final.(app.Model); ok {
		if err := state.SetLastQuery(fm.Query()); err != nil {
			logger.Warn("failed to save state", "err", err)
		}
	}
	return exitPass
}

func pick(useFirst bool, a, b color.Format) color.Format {
	if useFirst || b == "" {
		return a
	}
	return b
}

func pickThreshold(useFirst bool, a, b color.Threshold) color.Threshold {
	if useFirst || b == 0 {
		return a
	}
	return b
}
