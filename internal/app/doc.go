// Package app wires configuration, the line store, the file watcher, and
// the UI into a running viewer.
package app
