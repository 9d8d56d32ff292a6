package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/contrast/internal/color"
)

func withTempState(t *testing.T) string {
	t.Helper()
	originalPath := path
	originalCurrent := current
	t.Cleanup(func() {
		path = originalPath
		current = originalCurrent
	})

	dir := filepath.Join(t.TempDir(), ".config", "contrast")
	if err := InitWithDir(dir); err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}
	return dir
}

func TestInit(t *testing.T) {
	withTempState(t)

	if current == nil {
		t.Fatal("current state should be initialized")
	}
	if _, ok := GetLastQuery(); ok {
		t.Error("fresh state should have no last query")
	}
}

func TestLoad_ExistingFile(t *testing.T) {
	dir := withTempState(t)

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `{"foreground": "#767676", "background": "#ffffff", "format": "hex", "threshold": 4.5}`
	if err := os.WriteFile(filepath.Join(dir, "state.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	q, ok := GetLastQuery()
	if !ok {
		t.Fatal("expected a saved query")
	}
	want := color.Query{Foreground: "#767676", Background: "#ffffff", Format: color.Hex, Threshold: color.NormalText}
	if q != want {
		t.Errorf("GetLastQuery() = %+v, want %+v", q, want)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := withTempState(t)

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state.json"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Load(); err == nil {
		t.Error("Load() should fail on invalid JSON")
	}
}

func TestSetLastQuery_Persists(t *testing.T) {
	dir := withTempState(t)

	q := color.Query{Foreground: "rgb(0, 0, 0)", Background: "rgb(255, 255, 255)", Format: color.RGB, Threshold: color.LargeText}
	if err := SetLastQuery(q); err != nil {
		t.Fatalf("SetLastQuery() failed: %v", err)
	}

	// Reload from disk
	if err := InitWithDir(dir); err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}
	got, ok := GetLastQuery()
	if !ok || got != q {
		t.Errorf("GetLastQuery() = %+v, %v; want %+v", got, ok, q)
	}
}
