package version

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// InstallMethod represents how contrast was installed.
type InstallMethod string

const (
	InstallMethodHomebrew InstallMethod = "homebrew"
	InstallMethodGo       InstallMethod = "go"
	InstallMethodBinary   InstallMethod = "binary"
)

var (
	detectedMethod     InstallMethod
	detectedMethodOnce sync.Once
)

// DetectInstallMethod determines how contrast was installed.
// Result is cached for the lifetime of the process.
func DetectInstallMethod() InstallMethod {
	detectedMethodOnce.Do(func() {
		detectedMethod = detectInstallMethod()
	})
	return detectedMethod
}

func detectInstallMethod() InstallMethod {
	if isHomebrewInstall() {
		return InstallMethodHomebrew
	}
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		if isGoBinPath(exe) {
			return InstallMethodGo
		}
	}
	return InstallMethodBinary
}

func isHomebrewInstall() bool {
	if runtime.GOOS != "darwin" && runtime.GOOS != "linux" {
		return false
	}
	if _, err := exec.LookPath("brew"); err != nil {
		return false
	}
	out, err := exec.Command("brew", "list", "--formula", "contrast").CombinedOutput()
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}

// isGoBinPath reports whether exe sits in a Go bin directory.
func isGoBinPath(exe string) bool {
	dir := filepath.Dir(exe)

	if gobin := os.Getenv("GOBIN"); gobin != "" && dir == gobin {
		return true
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" && dir == filepath.Join(gopath, "bin") {
		return true
	}
	if home, err := os.UserHomeDir(); err == nil && dir == filepath.Join(home, "go", "bin") {
		return true
	}

	// Heuristic: path contains /go/bin/
	sep := string(filepath.Separator)
	return strings.Contains(exe, sep+"go"+sep+"bin"+sep)
}

// UpgradeCommand returns the command that upgrades an installation made
// with method.
func UpgradeCommand(method InstallMethod) string {
	switch method {
	case InstallMethodHomebrew:
		return "brew upgrade contrast"
	case InstallMethodGo:
		return "go install github.com/marcus/contrast/cmd/contrast@latest"
	default:
		return "download a release from https://github.com/marcus/contrast/releases"
	}
}

// Describe formats the -version output line.
func Describe(v string, method InstallMethod) string {
	return fmt.Sprintf("contrast version %s (%s install)", v, method)
}
