package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Filter state
	Increase key.Binding
	Decrease key.Binding
	Reset    key.Binding

	// Search and command input
	Search    key.Binding
	Command   key.Binding
	NextMatch key.Binding
	PrevMatch key.Binding
	Confirm   key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search / close"),
		),

		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Raise level filter"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Lower level filter"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset view"),
		),

		Search: key.NewBinding(
			key.WithKeys("/", "f"),
			key.WithHelp("/", "Search"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Command prompt"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "Previous match"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
	}
}

// applyKeyOverrides rebinds actions from the config [keys] table. Each value
// replaces the primary key of the named action; unknown actions are ignored.
func applyKeyOverrides(k keyMap, overrides map[string]string) keyMap {
	rebind := func(b *key.Binding, keyName, help string) {
		*b = key.NewBinding(key.WithKeys(keyName), key.WithHelp(keyName, help))
	}
	for action, keyName := range overrides {
		switch action {
		case "quit":
			rebind(&k.Quit, keyName, "Quit")
		case "help":
			rebind(&k.Help, keyName, "Toggle help")
		case "theme":
			rebind(&k.CycleTheme, keyName, "Cycle theme")
		case "increase":
			rebind(&k.Increase, keyName, "Raise level filter")
		case "decrease":
			rebind(&k.Decrease, keyName, "Lower level filter")
		case "reset":
			rebind(&k.Reset, keyName, "Reset view")
		case "search":
			rebind(&k.Search, keyName, "Search")
		case "command":
			rebind(&k.Command, keyName, "Command prompt")
		case "next_match":
			rebind(&k.NextMatch, keyName, "Next match")
		case "prev_match":
			rebind(&k.PrevMatch, keyName, "Previous match")
		case "top":
			rebind(&k.Top, keyName, "Go to top")
		case "bottom":
			rebind(&k.Bottom, keyName, "Go to bottom")
		}
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease, k.Reset},
		{k.Search, k.NextMatch, k.PrevMatch, k.Command},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.HalfPageDown, k.HalfPageUp},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
