package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the viewer settings a user can override on disk.
type Config struct {
	// HighlightFullLine colors the whole line with the level color rather
	// than just the level token.
	HighlightFullLine bool
	// MarkerPattern is an optional regex overriding the default level
	// marker convention; its first capture group is the level name.
	MarkerPattern string
	// Theme names the startup color theme.
	Theme string
	// MaxLines, when positive, keeps only that many lines from the end of
	// the file. Zero loads everything.
	MaxLines int
	// Colors maps lowercase level names to hex color overrides.
	Colors map[string]string
	// Keys maps action names to replacement key presses.
	Keys map[string]string
}

const defaultConfigPath = "~/.config/loupe/config.toml"

// Load locates and parses the config file, falling back to defaults when it
// is missing. An empty path uses the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		HighlightFullLine bool              `toml:"highlight_full_line"`
		MarkerPattern     string            `toml:"marker_pattern"`
		Theme             string            `toml:"theme"`
		MaxLines          int               `toml:"max_lines"`
		Colors            map[string]string `toml:"colors"`
		Keys              map[string]string `toml:"keys"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.HighlightFullLine = raw.HighlightFullLine
	cfg.MarkerPattern = strings.TrimSpace(raw.MarkerPattern)
	cfg.Theme = strings.TrimSpace(raw.Theme)
	if raw.MaxLines > 0 {
		cfg.MaxLines = raw.MaxLines
	}
	cfg.Colors = normalizeMap(raw.Colors)
	cfg.Keys = normalizeMap(raw.Keys)

	return cfg, nil
}

func normalizeMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
