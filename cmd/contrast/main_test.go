package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/contrast/internal/styles"
)

// runCLI runs the command against an isolated config path.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	defer styles.ApplyTheme("default")

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-config", cfgPath}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"pass", []string{"-fg", "#767676", "-bg", "#ffffff"}, exitPass},
		{"fail", []string{"-fg", "#777777", "-bg", "#ffffff"}, exitFail},
		{"positional", []string{"#000", "#fff"}, exitPass},
		{"icon threshold", []string{"-threshold", "icon", "#777777", "#ffffff"}, exitPass},
		{"rgb format", []string{"-format", "rgb", "rgb(0, 0, 0)", "rgb(255, 255, 255)"}, exitPass},
		{"format mismatch", []string{"rgb(0, 0, 0)", "rgb(255, 255, 255)"}, exitInvalid},
		{"invalid color", []string{"-fg", "blue", "-bg", "#ffffff"}, exitInvalid},
		{"bad threshold", []string{"-threshold", "huge", "#000", "#fff"}, exitInvalid},
		{"bad format", []string{"-format", "hsl", "#000", "#fff"}, exitInvalid},
		{"too many args", []string{"#000", "#fff", "#111"}, exitInvalid},
		{"flags and args", []string{"-fg", "#000", "#000", "#fff"}, exitInvalid},
		{"unknown flag", []string{"-nope"}, exitInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != tt.want {
				t.Errorf("exit = %d, want %d\nstdout: %s\nstderr: %s", code, tt.want, stdout, stderr)
			}
		})
	}
}

func TestRun_TextOutput(t *testing.T) {
	code, stdout, _ := runCLI(t, "-suggest", "#777777", "#ffffff")
	if code != exitFail {
		t.Fatalf("exit = %d, want %d", code, exitFail)
	}
	for _, want := range []string{"FAIL (normalText)", "4.48:1", "suggestion"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRun_JSONOutput(t *testing.T) {
	code, stdout, _ := runCLI(t, "-json", "#000000", "#ffffff")
	if code != exitPass {
		t.Fatalf("exit = %d, want %d", code, exitPass)
	}

	var decoded struct {
		Result struct {
			Ratio float64 `json:"ratio"`
			Pass  bool    `json:"pass"`
		} `json:"result"`
		Levels []struct {
			Name string `json:"name"`
		} `json:"levels"`
	}
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if !decoded.Result.Pass || decoded.Result.Ratio < 20.99 {
		t.Errorf("decoded result = %+v", decoded.Result)
	}
	if len(decoded.Levels) != 3 {
		t.Errorf("levels = %d, want 3", len(decoded.Levels))
	}
}

func TestRun_MarkdownOutput(t *testing.T) {
	code, stdout, _ := runCLI(t, "-markdown", "#000000", "#ffffff")
	if code != exitPass {
		t.Fatalf("exit = %d, want %d", code, exitPass)
	}
	if !strings.Contains(ansi.Strip(stdout), "21.00:1") {
		t.Errorf("markdown output missing ratio:\n%s", stdout)
	}
}

func TestRun_ConfigDefaults(t *testing.T) {
	defer styles.ApplyTheme("default")

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"check": {"threshold": "largeText"}, "ui": {"theme": {"name": "dracula"}}}`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfgPath, "#777777", "#ffffff"}, &stdout, &stderr)
	if code != exitPass {
		t.Errorf("configured largeText threshold should pass, exit = %d\n%s", code, stdout.String())
	}
	if got := styles.GetCurrentThemeName(); got != "dracula" {
		t.Errorf("theme = %q, want dracula", got)
	}

	stdout.Reset()
	code = run([]string{"-config", cfgPath, "-threshold", "normal", "-theme", "light", "#777777", "#ffffff"}, &stdout, &stderr)
	if code != exitFail {
		t.Errorf("flag threshold should override config, exit = %d", code)
	}
	if got := styles.GetCurrentThemeName(); got != "light" {
		t.Errorf("theme = %q, want light", got)
	}
}

func TestRun_BrokenConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgPath, []byte(`{broken`), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", cfgPath, "#000", "#fff"}, &stdout, &stderr); code != exitInvalid {
		t.Errorf("exit = %d, want %d", code, exitInvalid)
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "-version")
	if code != exitPass {
		t.Fatalf("exit = %d", code)
	}
	if !strings.HasPrefix(stdout, "contrast version ") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	if code != exitPass {
		t.Errorf("exit = %d, want %d", code, exitPass)
	}
	if !strings.Contains(stderr, "Usage: contrast") {
		t.Errorf("usage missing:\n%s", stderr)
	}
}
