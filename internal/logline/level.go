package logline

import "strings"

// Level is the numeric severity attached to a log line. Higher values are
// more severe, so a minimum-level filter of 0 shows everything.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// LevelNone marks a line that carries no recognizable level token, such as
// a stack trace or other continuation line.
const LevelNone Level = -1

// MaxLevel is the highest filterable severity.
const MaxLevel = LevelCritical

// String returns the canonical marker name for the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "NONE"
	}
}

// Valid reports whether l is a filterable severity in [0, MaxLevel].
func (l Level) Valid() bool {
	return l >= LevelDebug && l <= MaxLevel
}

// ParseLevel maps a marker name to its Level. Common short forms are
// accepted; ok is false for unrecognized names.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "TRACE":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "WARNING", "WARN":
		return LevelWarning, true
	case "ERROR", "ERR":
		return LevelError, true
	case "CRITICAL", "CRIT", "FATAL":
		return LevelCritical, true
	default:
		return LevelNone, false
	}
}
