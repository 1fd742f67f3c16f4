package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HighlightFullLine {
		t.Fatalf("HighlightFullLine = true, want false by default")
	}
	if cfg.MarkerPattern != "" || cfg.Theme != "" || cfg.MaxLines != 0 {
		t.Fatalf("expected zero defaults, got %+v", cfg)
	}
	if cfg.Colors != nil || cfg.Keys != nil {
		t.Fatalf("expected nil maps, got %+v", cfg)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
highlight_full_line = true
marker_pattern = '  level=(\w+)  '
theme = "  Solarized  "
max_lines = 2000

[colors]
CRITICAL = " #FF5555 "
error = "#FFB86C"

[keys]
Quit = " x "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.HighlightFullLine {
		t.Fatalf("HighlightFullLine = false, want true")
	}
	if cfg.MarkerPattern != `level=(\w+)` {
		t.Fatalf("MarkerPattern = %q, want trimmed pattern", cfg.MarkerPattern)
	}
	if cfg.Theme != "Solarized" {
		t.Fatalf("Theme = %q, want Solarized", cfg.Theme)
	}
	if cfg.MaxLines != 2000 {
		t.Fatalf("MaxLines = %d, want 2000", cfg.MaxLines)
	}
	if cfg.Colors["critical"] != "#FF5555" || cfg.Colors["error"] != "#FFB86C" {
		t.Fatalf("Colors = %v, want lowercased trimmed overrides", cfg.Colors)
	}
	if cfg.Keys["quit"] != "x" {
		t.Fatalf("Keys = %v, want quit rebound to x", cfg.Keys)
	}
}

func TestLoad_NegativeMaxLinesIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("max_lines = -5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxLines != 0 {
		t.Fatalf("MaxLines = %d, want 0", cfg.MaxLines)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
