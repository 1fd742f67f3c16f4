package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wtrock/loupe/internal/config"
	"github.com/wtrock/loupe/internal/logline"
	"github.com/wtrock/loupe/internal/prefs"
	"github.com/wtrock/loupe/internal/view"
)

// inputMode tracks which text input, if any, currently owns the keyboard.
type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeCommand
)

// Options configures the UI.
type Options struct {
	Lines      []logline.Line
	SourceName string
	Config     config.Config
	ThemeName  string
	PrefsPath  string
}

// LinesMsg carries freshly reloaded lines into the running program.
type LinesMsg struct {
	Lines []logline.Line
}

// ReloadErrorMsg reports a failed live reload. It is shown in the status
// bar and never terminates the program.
type ReloadErrorMsg struct {
	Err error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Immutable inputs
	source            string
	highlightFullLine bool
	prefsPath         string

	// Data state
	lines []logline.Line
	state view.State
	rows  []view.Row

	// Search match cursor: indices into rows of highlighted rows.
	matchRows []int
	matchIdx  int

	// UI state
	theme       Theme
	styles      Styles
	keys        keyMap
	viewport    viewport.Model
	mode        inputMode
	searchInput textinput.Model
	cmdInput    textinput.Model

	statusMsg   string
	statusIsErr bool
	showHelp    bool

	width  int
	height int
	ready  bool

	quitting bool
}

// New creates the root model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := applyColorOverrides(GetTheme(themeName), opts.Config.Colors)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "search term"
	searchInput.Prompt = "/"
	searchInput.CharLimit = 200

	cmdInput := textinput.New()
	cmdInput.Placeholder = "+  -  0-4  x-y  f term  r  q"
	cmdInput.Prompt = ":"
	cmdInput.CharLimit = 200

	m := Model{
		source:            opts.SourceName,
		highlightFullLine: opts.Config.HighlightFullLine,
		prefsPath:         prefsPath,
		lines:             opts.Lines,
		state:             view.DefaultState(),
		theme:             theme,
		styles:            theme.Styles(),
		keys:              applyKeyOverrides(DefaultKeyMap(), opts.Config.Keys),
		searchInput:       searchInput,
		cmdInput:          cmdInput,
	}
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight(msg.Height))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight(msg.Height)
		}
		m.searchInput.Width = msg.Width - 4
		m.cmdInput.Width = msg.Width - 4
		m.updateContent()
		return m, nil

	case LinesMsg:
		m.lines = msg.Lines
		m.refreshRows()
		m.setStatus(fmt.Sprintf("reloaded %d lines", len(msg.Lines)))
		if m.ready {
			m.updateContent()
			m.viewport.GotoBottom()
		}
		return m, nil

	case ReloadErrorMsg:
		m.setStatusError(msg.Err)
		return m, nil
	}

	return m, nil
}

// contentHeight is the viewport height: total minus header and status bar.
func contentHeight(total int) int {
	h := total - 2
	if h < 1 {
		h = 1
	}
	return h
}

// handleKey routes a key press by input mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	}

	if m.showHelp {
		// Any key closes the overlay; quit still works.
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		m.updateContent()
		return m, nil

	case key.Matches(msg, m.keys.Increase):
		m.applyCommand(view.Increase{})
		return m, nil

	case key.Matches(msg, m.keys.Decrease):
		m.applyCommand(view.Decrease{})
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.applyCommand(view.Reset{})
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Command):
		m.mode = modeCommand
		m.cmdInput.SetValue("")
		m.cmdInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextMatch):
		m.moveMatch(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMatch):
		m.moveMatch(-1)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.state.Term != "" {
			m.state.Term = ""
			m.refreshRows()
			m.updateContent()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		return m, nil
	}

	// Bare digits set the level filter directly.
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		if cmd, err := view.ParseCommand(s); err == nil {
			m.applyCommand(cmd)
		} else {
			m.setStatusError(err)
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey handles keyboard input while the search prompt is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		term := m.searchInput.Value()
		m.mode = modeNormal
		m.searchInput.Blur()
		if term == "" {
			return m, nil
		}
		m.applyCommand(view.Find{Term: term})
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.mode = modeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleCommandKey handles keyboard input while the command prompt is open.
func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		token := m.cmdInput.Value()
		m.mode = modeNormal
		m.cmdInput.Blur()
		if token == "" {
			return m, nil
		}
		cmd, err := view.ParseCommand(token)
		if err != nil {
			m.setStatusError(err)
			return m, nil
		}
		if _, ok := cmd.(view.Quit); ok {
			m.quitting = true
			return m, tea.Quit
		}
		m.applyCommand(cmd)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.mode = modeNormal
		m.cmdInput.Blur()
		m.cmdInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.cmdInput, cmd = m.cmdInput.Update(msg)
	return m, cmd
}

// applyCommand folds a viewer command into the session state. On a command
// error the prior state is kept and the error surfaces in the status bar.
func (m *Model) applyCommand(c view.Command) {
	st, err := view.Apply(m.state, c)
	if err != nil {
		m.setStatusError(err)
		return
	}
	m.state = st
	m.clearStatus()
	m.refreshRows()
	m.updateContent()
}

// refreshRows recomputes the displayed rows and the search match cursor.
func (m *Model) refreshRows() {
	m.rows = view.Render(m.lines, m.state)
	m.matchRows = m.matchRows[:0]
	for i, row := range m.rows {
		if row.Highlighted() {
			m.matchRows = append(m.matchRows, i)
		}
	}
	m.matchIdx = 0
}

// moveMatch advances the active search match by delta and scrolls to it.
func (m *Model) moveMatch(delta int) {
	if len(m.matchRows) == 0 {
		return
	}
	n := len(m.matchRows)
	m.matchIdx = (m.matchIdx + delta%n + n) % n
	m.updateContent()
	m.scrollToMatch()
}

// scrollToMatch centers the viewport on the active match when possible.
func (m *Model) scrollToMatch() {
	if !m.ready || len(m.matchRows) == 0 {
		return
	}
	target := m.matchRows[m.matchIdx]
	offset := target - m.viewport.Height/2
	if offset < 0 {
		offset = 0
	}
	m.viewport.SetYOffset(offset)
}

// updateContent re-renders the viewport content.
func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) setStatus(text string) {
	m.statusMsg = text
	m.statusIsErr = false
}

func (m *Model) setStatusError(err error) {
	m.statusMsg = err.Error()
	m.statusIsErr = true
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.statusIsErr = false
}
