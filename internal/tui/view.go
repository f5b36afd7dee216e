package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/slotshare/internal/dateutil"
	"github.com/javiermolinar/slotshare/internal/summary"
	"github.com/javiermolinar/slotshare/internal/tui/input"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width > 0 && m.width < timeColWidth+daysPerWeek*minColWidth/2 {
		return "Terminal too small"
	}

	sections := []string{m.renderTitle(), m.renderDayHeaders()}
	sections = append(sections, m.renderGrid()...)
	if m.showText {
		sections = append(sections, m.renderTextPanel())
	}
	if m.mode == ModePrompt {
		sections = append(sections, m.renderPrompt())
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// chromeHeight is the number of lines used by everything but the grid.
func (m Model) chromeHeight() int {
	helpLines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			helpLines = max(helpLines, len(col))
		}
	}
	h := 3 + helpLines // title, day headers, status
	if m.showText {
		h += lipgloss.Height(m.renderTextPanel())
	}
	if m.mode == ModePrompt {
		h += lipgloss.Height(m.renderPrompt())
	}
	return h
}

func (m Model) renderTitle() string {
	f := m.session.Formatter()
	week := "week of " + f.Format(m.weekStart, summary.StyleLongDate)
	count := fmt.Sprintf("%d slot(s) on %d day(s)", m.session.Len(), len(m.session.Buckets()))
	left := m.styles.TitleStyle.Render("slotshare") + m.styles.SubtleStyle.Render("  "+week)
	if m.width <= 0 {
		return left + "  " + m.styles.SubtleStyle.Render(count)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(count)
	if gap < 1 {
		return ansi.Truncate(left, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + m.styles.SubtleStyle.Render(count)
}

func (m Model) renderDayHeaders() string {
	today := dateutil.TruncateToDay(m.nowFunc().In(m.session.Location()))
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", timeColWidth))
	for d := 0; d < daysPerWeek; d++ {
		day := m.weekStart.AddDate(0, 0, d)
		style := m.styles.DayHeaderStyle
		if day.Equal(today) {
			style = m.styles.DayHeaderTodayStyle
		}
		label := ansi.Truncate(day.Format("Mon 02"), m.colWidth, "")
		b.WriteString(style.Width(m.colWidth).Render(label))
	}
	return b.String()
}

func (m Model) renderGrid() []string {
	states := m.gridStates()
	f := m.session.Formatter()

	visible := m.visibleRows()
	end := min(m.scrollOffset+visible, rowsPerDay)
	lines := make([]string, 0, end-m.scrollOffset)

	for r := m.scrollOffset; r < end; r++ {
		offHours := r < m.dayStartRow || r >= m.dayEndRow

		var b strings.Builder
		clock := dateutil.MinutesToClock(r * rowMinutes)
		if r%2 == 1 {
			clock = "  " + clock[2:]
		}
		timeStyle := m.styles.TimeColumnStyle
		if offHours {
			timeStyle = m.styles.TimeColumnOffStyle
		}
		b.WriteString(timeStyle.Render(clock))

		for d := 0; d < daysPerWeek; d++ {
			p := Position{Day: d, Row: r}
			state := states[d][r]
			isCursor := p == m.cursor

			label := ""
			if state == cellSlot && (r == 0 || states[d][r-1] != cellSlot) {
				label = f.Format(m.cellStart(p), summary.StyleShortTime)
			}
			if isCursor && label == "" {
				label = "▸"
			}

			b.WriteString(m.cellStyle(state, isCursor, offHours).Render(fitCell(" "+label, m.colWidth)))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (m Model) cellStyle(state cellState, isCursor, offHours bool) lipgloss.Style {
	switch {
	case state == cellPending && isCursor:
		return m.styles.PendingCursorStyle
	case state == cellPending:
		return m.styles.PendingCellStyle
	case state == cellSlot && isCursor:
		return m.styles.SlotCursorStyle
	case state == cellSlot:
		return m.styles.SlotCellStyle
	case isCursor:
		return m.styles.CursorStyle
	case offHours:
		return m.styles.OffHoursCellStyle
	}
	return m.styles.EmptyCellStyle
}

// fitCell truncates or pads s to exactly width cells.
func fitCell(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func (m Model) renderTextPanel() string {
	text := m.session.Text()
	if text == "" {
		text = m.styles.SubtleStyle.Render("No slots selected")
	}
	style := m.styles.TextPanelStyle
	if m.width > 0 {
		style = style.Width(max(m.width-2, 10))
	}
	return style.Render(strings.ReplaceAll(text, "\t", "  "))
}

func (m Model) renderPrompt() string {
	lines := []string{m.prompt.View()}
	for _, cmd := range input.PromptMatchingCommands(m.prompt.Value(), promptCommands) {
		hint := "  " + cmd.Suggestion(16)
		if m.width > 0 {
			hint = ansi.Truncate(hint, m.width, "…")
		}
		lines = append(lines, m.styles.PromptHintStyle.Render(hint))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	msg := m.statusMsg
	if m.width > 0 {
		msg = ansi.Truncate(msg, m.width, "…")
	}
	if m.statusErr {
		return m.styles.StatusErrorStyle.Render(msg)
	}
	return m.styles.StatusStyle.Render(msg)
}
