package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wtrock/loupe/internal/config"
	"github.com/wtrock/loupe/internal/logline"
	"github.com/wtrock/loupe/internal/prefs"
	"github.com/wtrock/loupe/internal/ui"
)

// Options configure the application.
type Options struct {
	// LogPath is the file to view; empty reads the log from stdin.
	LogPath string
	// ConfigPath overrides the default config location (the -c flag).
	ConfigPath string
	// PrefsPath is empty except in tests.
	PrefsPath string
}

// Run boots the viewer until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	themeName := cfg.Theme
	if themeName == "" {
		themeName = userPrefs.Theme
	}

	detector, err := buildDetector(cfg)
	if err != nil {
		return err
	}

	lines, source, err := loadLines(opts.LogPath, detector, cfg.MaxLines)
	if err != nil {
		return err
	}

	model := ui.New(ui.Options{
		Lines:      lines,
		SourceName: source,
		Config:     cfg,
		ThemeName:  themeName,
		PrefsPath:  opts.PrefsPath,
	})

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.LogPath == "" {
		// The log came over stdin, so interactive input needs the terminal.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("open terminal for input: %w", err)
		}
		defer tty.Close()
		progOpts = append(progOpts, tea.WithInput(tty))
	}

	prog := tea.NewProgram(model, progOpts...)

	if opts.LogPath != "" {
		stop, err := watchFile(ctx, opts.LogPath, detector, cfg.MaxLines, prog.Send)
		if err == nil {
			defer stop()
		}
		// A watch failure only disables live reload; the viewer still works.
	}

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func buildDetector(cfg config.Config) (*logline.Detector, error) {
	if cfg.MarkerPattern == "" {
		return logline.NewDetector(), nil
	}
	detector, err := logline.NewDetectorPattern(cfg.MarkerPattern)
	if err != nil {
		return nil, fmt.Errorf("config marker_pattern: %w", err)
	}
	return detector, nil
}

func loadLines(path string, d *logline.Detector, maxLines int) ([]logline.Line, string, error) {
	if path == "" {
		lines, err := logline.Load(os.Stdin, d)
		if err != nil {
			return nil, "", err
		}
		return lines, "stdin", nil
	}
	lines, err := logline.LoadFile(path, d, maxLines)
	if err != nil {
		return nil, "", err
	}
	return lines, filepath.Base(path), nil
}
