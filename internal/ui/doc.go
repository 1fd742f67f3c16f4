// Package ui provides the Bubble Tea terminal interface for the viewer.
//
// # Architecture Overview
//
// The Model owns the loaded lines, the current filter State, and the rows
// the view filter last produced. Every state change goes through the view
// package's command dispatch, so the UI never mutates filter state
// directly; command errors surface in the status bar and leave the prior
// state intact.
//
// # Package Structure
//
//   - app.go: the root Model, Update loop, and key routing
//   - render.go: header, viewport content, line styling, status bar
//   - keys.go: key bindings, including config-file overrides
//   - theme.go: color themes and per-level colors
//   - help.go: the help overlay
//
// # Interaction
//
// Single keys drive the common operations (+/- level, digits for a direct
// level, / to search, n/N across matches, r to reset, q to quit). The ":"
// prompt accepts the full command token grammar, including the "x-y"
// level-and-context form. Live reloads arrive as LinesMsg from the file
// watcher; a reload failure becomes a status notice, never a crash.
package ui
