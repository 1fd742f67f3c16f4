// Package logline loads log files into memory and tags each line with a
// severity level.
//
// # Overview
//
// The package is the read-only line store behind the viewer: it loads the
// whole source once at startup (or the trailing maxLines via a ring buffer)
// and never mutates it afterwards. Ordering is the file's original order.
//
// # Levels
//
// Severities run DEBUG(0) through CRITICAL(4); higher values are more
// severe, so a minimum-level filter of zero displays everything. Lines with
// no recognizable marker get LevelNone and are treated as continuation
// lines by the view filter.
//
// # Marker convention
//
// The default Detector recognizes two unambiguous forms:
//
//	2024-03-01 10:00:00,123 [ERROR] worker - connect failed
//	WARNING: disk usage above threshold
//
// that is, a bracketed "[LEVEL]" token anywhere in the line, or a bare
// leading "LEVEL" / "LEVEL:" token. WARN, ERR, CRIT, FATAL, and TRACE are
// accepted aliases. Deployments with other formats can supply a custom
// regex (first capture group = level name) through the configuration file.
//
// # Errors
//
// LoadFile wraps open and read failures ("open log: ...", "read log: ...")
// and retains no partial state; the caller treats these as fatal before the
// interactive loop starts.
package logline
