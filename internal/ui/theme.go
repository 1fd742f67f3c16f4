package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wtrock/loupe/internal/logline"
)

// Theme defines the colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Warning string
	Danger  string

	// HighlightBg/HighlightFg draw the active search occurrence.
	HighlightBg string
	HighlightFg string

	// LevelColors maps each severity to its display color.
	LevelColors map[logline.Level]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HighlightBg)).
			Foreground(lipgloss.Color(t.HighlightFg)),

		ActiveHighlight: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Warning)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// LevelStyle returns the style for a severity token.
func (t Theme) LevelStyle(lvl logline.Level) lipgloss.Style {
	if color, ok := t.LevelColors[lvl]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(lvl >= logline.LevelError)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style

	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Highlight       lipgloss.Style
	ActiveHighlight lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
}

var themes = []Theme{
	{
		Name:        "Dracula",
		Background:  "#282A36",
		Surface:     "#343746",
		Text:        "#F8F8F2",
		Muted:       "#9A9CB0",
		Faint:       "#6272A4",
		Accent:      "#BD93F9",
		Warning:     "#F1FA8C",
		Danger:      "#FF5555",
		HighlightBg: "#44475A",
		HighlightFg: "#F1FA8C",
		LevelColors: map[logline.Level]string{
			logline.LevelDebug:    "#6272A4",
			logline.LevelInfo:     "#8BE9FD",
			logline.LevelWarning:  "#F1FA8C",
			logline.LevelError:    "#FFB86C",
			logline.LevelCritical: "#FF5555",
		},
	},
	{
		Name:        "Solarized",
		Background:  "#002B36",
		Surface:     "#073642",
		Text:        "#93A1A1",
		Muted:       "#657B83",
		Faint:       "#586E75",
		Accent:      "#268BD2",
		Warning:     "#B58900",
		Danger:      "#DC322F",
		HighlightBg: "#073642",
		HighlightFg: "#B58900",
		LevelColors: map[logline.Level]string{
			logline.LevelDebug:    "#586E75",
			logline.LevelInfo:     "#2AA198",
			logline.LevelWarning:  "#B58900",
			logline.LevelError:    "#CB4B16",
			logline.LevelCritical: "#DC322F",
		},
	},
	{
		Name:        "Light",
		Background:  "#FAFAFA",
		Surface:     "#EEEEEE",
		Text:        "#212121",
		Muted:       "#616161",
		Faint:       "#9E9E9E",
		Accent:      "#6200EE",
		Warning:     "#B26A00",
		Danger:      "#B00020",
		HighlightBg: "#FFF59D",
		HighlightFg: "#212121",
		LevelColors: map[logline.Level]string{
			logline.LevelDebug:    "#9E9E9E",
			logline.LevelInfo:     "#1565C0",
			logline.LevelWarning:  "#B26A00",
			logline.LevelError:    "#C62828",
			logline.LevelCritical: "#B00020",
		},
	},
}

// GetTheme returns the named theme, defaulting to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// applyColorOverrides replaces per-level colors from the config [colors]
// table. Unknown level names are ignored.
func applyColorOverrides(t Theme, overrides map[string]string) Theme {
	if len(overrides) == 0 {
		return t
	}
	colors := make(map[logline.Level]string, len(t.LevelColors))
	for lvl, c := range t.LevelColors {
		colors[lvl] = c
	}
	for name, color := range overrides {
		if lvl, ok := logline.ParseLevel(name); ok {
			colors[lvl] = color
		}
	}
	t.LevelColors = colors
	return t
}
