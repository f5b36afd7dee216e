package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotshare/internal/tui/commands"
	"github.com/javiermolinar/slotshare/internal/tui/input"
)

// keyMap holds the normal-mode key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Anchor   key.Binding
	Commit   key.Binding
	Cancel   key.Binding
	Text     key.Binding
	CopyLink key.Binding
	CopyText key.Binding
	Clear    key.Binding
	Prompt   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "earlier")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "later")),
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev day")),
		Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next day")),
		PrevWeek: key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "prev week")),
		NextWeek: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "next week")),
		Today:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "today")),
		Anchor:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start range")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Text:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "text")),
		CopyLink: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		CopyText: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy text")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Prompt:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Anchor, k.Commit, k.Text, k.CopyLink, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevWeek, k.NextWeek, k.Today, k.Prompt},
		{k.Anchor, k.Commit, k.Cancel, k.Clear},
		{k.Text, k.CopyLink, k.CopyText, k.Help, k.Quit},
	}
}

var promptCommands = []input.PromptCommand{
	{Name: "/goto", Usage: "/goto DATE", Description: "Show the week of a date (today, friday, 2024-01-01)"},
	{Name: "/open", Usage: "/open LINK", Description: "Replace the schedule with a shared link"},
	{Name: "/add", Usage: "/add START END", Description: "Select a range on the cursor day"},
	{Name: "/clear", Usage: "/clear", Description: "Remove every selected slot"},
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.log.Debugw("key", map[string]any{"key": msg.String(), "mode": int(m.mode)})

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Navigation
	case key.Matches(msg, m.keys.Up):
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Down):
		if m.cursor.Row < rowsPerDay-1 {
			m.cursor.Row++
		}
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Left):
		if m.cursor.Day > 0 {
			m.cursor.Day--
		} else {
			m.weekStart = m.weekStart.AddDate(0, 0, -daysPerWeek)
			m.cursor.Day = daysPerWeek - 1
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor.Day < daysPerWeek-1 {
			m.cursor.Day++
		} else {
			m.weekStart = m.weekStart.AddDate(0, 0, daysPerWeek)
			m.cursor.Day = 0
		}
	case key.Matches(msg, m.keys.PrevWeek):
		m.weekStart = m.weekStart.AddDate(0, 0, -daysPerWeek)
	case key.Matches(msg, m.keys.NextWeek):
		m.weekStart = m.weekStart.AddDate(0, 0, daysPerWeek)
	case key.Matches(msg, m.keys.Today):
		m.anchor = nil
		m.jumpTo(m.nowFunc())
		m.cursor.Row = rowOf(m.nowFunc().In(m.session.Location()))
		m.ensureCursorVisible()

	// Selection
	case key.Matches(msg, m.keys.Anchor):
		start := m.cellStart(m.cursor)
		if m.anchor != nil && m.anchor.Equal(start) {
			m.anchor = nil
			return m, nil
		}
		m.anchor = &start
	case key.Matches(msg, m.keys.Commit):
		return m.commitSelection()
	case key.Matches(msg, m.keys.Cancel):
		m.anchor = nil
		m.showText = false

	// Actions
	case key.Matches(msg, m.keys.Text):
		m.session.GenerateText()
		m.showText = true
	case key.Matches(msg, m.keys.CopyLink):
		return m.copyLink()
	case key.Matches(msg, m.keys.CopyText):
		if m.session.Len() == 0 {
			return m.setStatus("Nothing selected yet", false)
		}
		text := m.session.GenerateText()
		m.showText = true
		return m, m.copyCmd("text", text)
	case key.Matches(msg, m.keys.Clear):
		m.session.Clear()
		m.anchor = nil
		m.showText = false
		return m.setStatus("Cleared", false)
	case key.Matches(msg, m.keys.Prompt):
		m.mode = ModePrompt
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		return m, tea.Batch(m.prompt.Focus(), textinput.Blink)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handlePromptKeys handles keys while the command prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		m.prompt.SetValue("")
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.mode = ModeNormal
		m.prompt.Blur()
		m.prompt.SetValue("")
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// commitSelection hands the pending range to the session.
func (m Model) commitSelection() (tea.Model, tea.Cmd) {
	start, end := m.selectionRange()
	m.anchor = nil
	if err := m.session.Select(start, end); err != nil {
		return m.setStatus(err.Error(), true)
	}
	if m.showText {
		m.session.GenerateText()
	}
	return m.setStatus(fmt.Sprintf("%d slot(s) selected", m.session.Len()), false)
}

// copyLink puts the share link on the clipboard, or shows it when the
// clipboard is disabled.
func (m Model) copyLink() (tea.Model, tea.Cmd) {
	if m.session.Len() == 0 {
		return m.setStatus("Nothing selected yet", false)
	}
	link, err := m.session.ShareURL()
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	if !m.config.UI.Clipboard {
		return m.setStatus(link, false)
	}
	return m, m.copyCmd("link", link)
}

func (m Model) copyCmd(what, text string) tea.Cmd {
	if !m.config.UI.Clipboard {
		return commands.Status("Clipboard disabled in config")
	}
	return commands.Copy(what, text)
}
