// Package config handles loading and parsing the viewer's configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided (the -c flag), use it
//  2. Otherwise, use ~/.config/loupe/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//
// A missing config file is NOT an error; the viewer works out of the box.
// An unreadable or malformed file is an error, reported before the
// interactive loop starts.
//
// # TOML Format
//
// Example config.toml:
//
//	highlight_full_line = true
//	marker_pattern = 'level=(\w+)'
//	theme = "Dracula"
//	max_lines = 5000
//
//	[colors]
//	critical = "#FF5555"
//	error = "#FFB86C"
//
//	[keys]
//	quit = "q"
//	search = "/"
//
// Every field is optional. marker_pattern replaces the default level marker
// convention; its first capture group must yield the level name. The
// [colors] table overrides per-level display colors by lowercase level
// name, and [keys] rebinds viewer actions (see the ui package for action
// names). Tilde expansion is performed on the config path.
package config
