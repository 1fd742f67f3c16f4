package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wtrock/loupe/internal/logline"
	"github.com/wtrock/loupe/internal/view"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderHeader draws the single title line.
func (m Model) renderHeader() string {
	title := "loupe"
	if m.source != "" {
		title += " · " + m.source
	}
	header := m.styles.Header.Render(title)
	gap := m.width - lipgloss.Width(header)
	if gap > 0 {
		theme := m.styles.FaintText.Render(m.theme.Name)
		pad := gap - lipgloss.Width(theme)
		if pad > 0 {
			header += strings.Repeat(" ", pad) + theme
		}
	}
	return header
}

// renderStatus draws the bottom bar: active input prompt, or the current
// filter summary with any inline notice.
func (m Model) renderStatus() string {
	switch m.mode {
	case modeSearch:
		return m.searchInput.View()
	case modeCommand:
		return m.cmdInput.View()
	}

	var parts []string

	level := m.state.MinLevel.String()
	if m.state.MinLevel == logline.LevelDebug {
		level = "all"
	} else {
		level += "+"
	}
	parts = append(parts, m.styles.AccentText.Render("level "+level))

	if m.state.Context > 0 {
		parts = append(parts, m.styles.MutedText.Render(fmt.Sprintf("context %d", m.state.Context)))
	}

	parts = append(parts, m.styles.FaintText.Render(fmt.Sprintf("%d/%d lines", len(m.rows), len(m.lines))))

	if m.state.Term != "" {
		if len(m.matchRows) > 0 {
			parts = append(parts, m.styles.WarningText.Render(
				fmt.Sprintf("/%s %d/%d", m.state.Term, m.matchIdx+1, len(m.matchRows))))
		} else {
			parts = append(parts, m.styles.DangerText.Render("/"+m.state.Term+" no matches"))
		}
	}

	if m.statusMsg != "" {
		style := m.styles.MutedText
		if m.statusIsErr {
			style = m.styles.DangerText
		}
		parts = append(parts, style.Render(m.statusMsg))
	}

	sep := m.styles.FaintText.Render(" • ")
	return m.styles.Footer.Render(strings.Join(parts, sep))
}

// renderContent renders the visible rows for the viewport.
func (m Model) renderContent() string {
	if len(m.rows) == 0 {
		if m.state.Term != "" {
			return m.styles.MutedText.Render("no lines match /" + m.state.Term)
		}
		return m.styles.MutedText.Render("no lines at this level")
	}

	activeRow := -1
	if len(m.matchRows) > 0 && m.matchIdx < len(m.matchRows) {
		activeRow = m.matchRows[m.matchIdx]
	}

	var b strings.Builder
	for i, row := range m.rows {
		num := m.styles.FaintText.Render(fmt.Sprintf("%5d │ ", row.Index+1))
		b.WriteString(num)
		b.WriteString(m.renderLine(row, i == activeRow))
		if i < len(m.rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLine styles one row: level coloring plus search occurrence marks.
func (m Model) renderLine(row view.Row, active bool) string {
	base := m.baseStyle(row.Line)

	if !row.Highlighted() {
		if m.highlightFullLine || !row.Line.HasLevel() {
			return base.Render(row.Line.Text)
		}
		return m.colorizeToken(row.Line)
	}

	mark := m.styles.Highlight
	if active {
		mark = m.styles.ActiveHighlight
	}

	var b strings.Builder
	text := row.Line.Text
	prev := 0
	for _, span := range row.Matches {
		if span[0] > prev {
			b.WriteString(base.Render(text[prev:span[0]]))
		}
		b.WriteString(mark.Render(text[span[0]:span[1]]))
		prev = span[1]
	}
	if prev < len(text) {
		b.WriteString(base.Render(text[prev:]))
	}
	return b.String()
}

// baseStyle is the default style for a line's text.
func (m Model) baseStyle(line logline.Line) lipgloss.Style {
	if m.highlightFullLine && line.HasLevel() {
		return m.theme.LevelStyle(line.Level)
	}
	return m.styles.Text
}

var levelTokenRe = regexp.MustCompile(`\b(DEBUG|TRACE|INFO|WARNING|WARN|ERROR|ERR|CRITICAL|CRIT|FATAL)\b`)

// colorizeToken colors just the level token, leaving the rest plain.
func (m Model) colorizeToken(line logline.Line) string {
	loc := levelTokenRe.FindStringIndex(line.Text)
	if loc == nil {
		return m.styles.Text.Render(line.Text)
	}
	pre, token, post := line.Text[:loc[0]], line.Text[loc[0]:loc[1]], line.Text[loc[1]:]
	var b strings.Builder
	if pre != "" {
		b.WriteString(m.styles.FaintText.Render(pre))
	}
	b.WriteString(m.theme.LevelStyle(line.Level).Render(token))
	if post != "" {
		b.WriteString(m.styles.Text.Render(post))
	}
	return b.String()
}
