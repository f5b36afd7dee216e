package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotshare/internal/dateutil"
	"github.com/javiermolinar/slotshare/internal/summary"
	"github.com/javiermolinar/slotshare/internal/tui/commands"
	"github.com/javiermolinar/slotshare/internal/tui/input"
)

// handlePromptSubmit runs a submitted prompt command.
func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	name, arg := input.ParsePrompt(value)
	switch name {
	case "":
		return m, nil

	case "/goto":
		day, err := dateutil.ParseDate(arg, m.nowFunc(), m.session.Location())
		if err != nil {
			return m.setStatus(err.Error(), true)
		}
		m.anchor = nil
		m.jumpTo(day)
		return m.setStatus("Showing week of "+m.session.Formatter().Format(m.weekStart, summary.StyleLongDate), false)

	case "/open":
		if arg == "" {
			return m.setStatus("usage: /open LINK", true)
		}
		if err := m.session.Restore(arg); err != nil {
			return m.setStatus(fmt.Sprintf("Could not read link: %v", err), true)
		}
		m.anchor = nil
		m.showText = false
		m.focusFirstSlot()
		m.ensureCursorVisible()
		return m.setStatus(fmt.Sprintf("Loaded %d slot(s)", m.session.Len()), false)

	case "/add":
		return m.addOnCursorDay(arg)

	case "/clear":
		m.session.Clear()
		m.anchor = nil
		m.showText = false
		return m.setStatus("Cleared", false)
	}

	return m.setStatus(fmt.Sprintf("Unknown command %s", name), true)
}

// addOnCursorDay selects "START END" wall-clock times on the cursor's day.
func (m Model) addOnCursorDay(arg string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return m.setStatus("usage: /add START END", true)
	}
	from, err := dateutil.ParseClock(fields[0])
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	to, err := dateutil.ParseClock(fields[1])
	if err != nil {
		return m.setStatus(err.Error(), true)
	}

	day := m.weekStart.AddDate(0, 0, m.cursor.Day)
	if err := m.session.Select(dateutil.At(day, from), dateutil.At(day, to)); err != nil {
		return m.setStatus(err.Error(), true)
	}
	m.cursor.Row = min(from/rowMinutes, rowsPerDay-1)
	m.ensureCursorVisible()
	if m.showText {
		m.session.GenerateText()
	}
	return m.setStatus(fmt.Sprintf("%d slot(s) selected", m.session.Len()), false)
}

// setStatus shows a temporary status message.
func (m Model) setStatus(msg string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = time.Now().Add(commands.StatusTTL)
	return m, commands.ClearStatusAfter(commands.StatusTTL)
}
