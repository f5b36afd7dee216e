package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotshare/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.colWidth = m.calculateColWidth()
		m.help.Width = msg.Width
		m.prompt.Width = max(msg.Width-4, 10)
		m.ensureCursorVisible()
		return m, nil

	case commands.CopiedMsg:
		m.log.Infof("copied %s to clipboard", msg.What)
		return m.setStatus(fmt.Sprintf("Copied %s to clipboard", msg.What), false)

	case commands.ErrMsg:
		m.log.Errorw("tui command failed", msg.Err, nil)
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// calculateColWidth splits the terminal width between the seven day columns.
func (m Model) calculateColWidth() int {
	w := (m.width - timeColWidth - 2) / daysPerWeek
	return max(w, minColWidth)
}

// visibleRows returns how many grid rows fit on screen.
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return rowsPerDay
	}
	return max(m.height-m.chromeHeight(), 1)
}

// ensureCursorVisible scrolls so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor.Row < m.scrollOffset {
		m.scrollOffset = m.cursor.Row
	}
	if m.cursor.Row >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor.Row - visible + 1
	}
	m.scrollOffset = min(max(m.scrollOffset, 0), max(rowsPerDay-visible, 0))
}
