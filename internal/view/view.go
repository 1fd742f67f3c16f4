package view

import (
	"regexp"
	"strings"

	"github.com/wtrock/loupe/internal/logline"
)

// State is the mutable session state driving the filter. The zero value is
// not meaningful; use DefaultState.
type State struct {
	// MinLevel is the inclusive lower bound on displayed severity.
	// Zero shows every line.
	MinLevel logline.Level
	// Context is how many immediately preceding level-less lines to pull
	// in whenever a line passes the level filter.
	Context int
	// Term, when non-empty, restricts the display to lines containing it
	// (case-insensitive substring) and marks the occurrences.
	Term string
}

// DefaultState returns the state that reproduces the loaded file verbatim.
func DefaultState() State {
	return State{MinLevel: logline.LevelDebug, Context: 0, Term: ""}
}

// Row is one displayed line. Matches holds the byte ranges of search term
// occurrences in Line.Text; it is nil when no term is active.
type Row struct {
	Line    logline.Line
	Index   int // position in the loaded file
	Matches [][]int
}

// Highlighted reports whether the row contains the active search term.
func (r Row) Highlighted() bool {
	return len(r.Matches) > 0
}

// Render computes the ordered subsequence of lines to display for the given
// state. It is pure: neither lines nor st are modified.
//
// A line carrying a level is selected when its level is at or above
// st.MinLevel. A level-less line is selected when MinLevel is zero, or when
// it sits within the Context lines immediately preceding a level-selected
// line; that window extends only through level-less lines and is clipped at
// the start of the file. With a term set, the displayed rows are the
// selected lines that contain it; a term matching nothing yields an empty
// result.
func Render(lines []logline.Line, st State) []Row {
	selected := selectLines(lines, st)

	var termRe *regexp.Regexp
	if term := strings.TrimSpace(st.Term); term != "" {
		termRe = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	}

	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		if !selected[i] {
			continue
		}
		if termRe == nil {
			rows = append(rows, Row{Line: line, Index: i})
			continue
		}
		matches := termRe.FindAllStringIndex(line.Text, -1)
		if len(matches) == 0 {
			continue
		}
		rows = append(rows, Row{Line: line, Index: i, Matches: matches})
	}
	return rows
}

// selectLines marks every line index admitted by the level filter and its
// context windows.
func selectLines(lines []logline.Line, st State) []bool {
	selected := make([]bool, len(lines))
	for i, line := range lines {
		if line.HasLevel() {
			if line.Level >= st.MinLevel {
				selected[i] = true
				markContext(lines, selected, i, st.Context)
			}
			continue
		}
		if st.MinLevel == logline.LevelDebug {
			selected[i] = true
		}
	}
	return selected
}

// markContext selects up to window level-less lines immediately preceding
// index i. A line with its own level breaks the chain; if it qualifies it
// is selected on its own merit by the caller's scan.
func markContext(lines []logline.Line, selected []bool, i, window int) {
	for j := i - 1; j >= 0 && j >= i-window; j-- {
		if lines[j].HasLevel() {
			return
		}
		selected[j] = true
	}
}
