package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotshare/internal/config"
	"github.com/javiermolinar/slotshare/internal/session"
	"github.com/javiermolinar/slotshare/internal/tui/commands"
)

// Monday, January 1, 2024, 10:00 UTC.
var testNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Display.Timezone = "UTC"
	sess := session.New(session.Options{Location: time.UTC, BaseURL: "https://example.com/"})
	return *New(sess, cfg, WithNow(func() time.Time { return testNow }))
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

func TestNew_InitialPosition(t *testing.T) {
	m := newTestModel(t)

	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !m.weekStart.Equal(want) {
		t.Errorf("weekStart = %v, want %v", m.weekStart, want)
	}
	if m.cursor != (Position{Day: 0, Row: 16}) {
		t.Errorf("cursor = %+v, want day 0 row 16", m.cursor)
	}
	if m.dayStartRow != 16 || m.dayEndRow != 40 {
		t.Errorf("work rows = %d..%d, want 16..40", m.dayStartRow, m.dayEndRow)
	}
}

func TestNew_FocusesRestoredSlots(t *testing.T) {
	cfg := config.Default()
	sess := session.New(session.Options{Location: time.UTC})
	if err := sess.Restore("DnI--DnJC"); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	m := *New(sess, cfg, WithNow(func() time.Time { return testNow.AddDate(0, 2, 0) }))

	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !m.weekStart.Equal(want) {
		t.Errorf("weekStart = %v, want %v", m.weekStart, want)
	}
	if m.cursor != (Position{Day: 0, Row: 46}) {
		t.Errorf("cursor = %+v, want day 0 row 46", m.cursor)
	}
}

func TestSelectRangeWithKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m,
		runeKey('j'), runeKey('j'), // 09:00
		tea.KeyMsg{Type: tea.KeySpace},
		runeKey('j'), runeKey('j'), // 10:00 cell, ends 10:30
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if m.anchor != nil {
		t.Fatal("anchor should be cleared after commit")
	}
	if got := m.session.Len(); got != 1 {
		t.Fatalf("Len = %d, want 1", got)
	}

	m = press(t, m, runeKey('t'))
	if !m.showText {
		t.Fatal("text panel should be shown")
	}
	want := "January 1, 2024:\n\t9:00 AM - 10:30 AM"
	if got := m.session.Text(); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestSelectRange_AnchorAfterCursor(t *testing.T) {
	m := newTestModel(t)
	m.cursor = Position{Day: 1, Row: 2}
	anchor := m.cellStart(Position{Day: 0, Row: 46})
	m.anchor = &anchor

	start, end := m.selectionRange()
	if want := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2024, 1, 2, 1, 30, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}

func TestSelectRange_AnchorSurvivesWeekChange(t *testing.T) {
	m := newTestModel(t)
	m.cursor = Position{Day: 6, Row: 46} // Sun Jan 7, 23:00
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, runeKey('l'))

	if want := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC); !m.weekStart.Equal(want) {
		t.Fatalf("weekStart = %v, want %v", m.weekStart, want)
	}
	states := m.gridStates()
	if states[0][46] != cellPending || states[0][47] != cellEmpty {
		t.Errorf("Mon row 46/47 = %v/%v, want pending/empty", states[0][46], states[0][47])
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	ivs := m.session.Intervals()
	if len(ivs) != 1 {
		t.Fatalf("got %d intervals, want 1", len(ivs))
	}
	if want := time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC); !ivs[0].Start.Equal(want) {
		t.Errorf("start = %v, want %v", ivs[0].Start, want)
	}
	if want := time.Date(2024, 1, 8, 23, 30, 0, 0, time.UTC); !ivs[0].End.Equal(want) {
		t.Errorf("end = %v, want %v", ivs[0].End, want)
	}
}

func TestSelectRange_AnchorBeforeWeekJump(t *testing.T) {
	m := newTestModel(t)
	m.cursor = Position{Day: 0, Row: 18} // Mon Jan 1, 09:00
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, runeKey('L'))

	start, end := m.selectionRange()
	if want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2024, 1, 8, 9, 30, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}

func TestCommit_SingleCellAndMerge(t *testing.T) {
	m := newTestModel(t)
	m.cursor = Position{Day: 0, Row: 18}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.cursor = Position{Day: 0, Row: 19}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.session.Len(); got != 1 {
		t.Fatalf("touching cells should merge, Len = %d", got)
	}
	if got := m.session.GenerateText(); got != "January 1, 2024:\n\t9:00 AM - 10:00 AM" {
		t.Errorf("text = %q", got)
	}
}

func TestAnchorToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.anchor == nil {
		t.Fatal("expected anchor")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.anchor != nil {
		t.Fatal("second space on the same cell should drop the anchor")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.anchor != nil {
		t.Fatal("esc should drop the anchor")
	}
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t)
	start := m.weekStart

	m = press(t, m, runeKey('L'))
	if !m.weekStart.Equal(start.AddDate(0, 0, 7)) {
		t.Errorf("L: weekStart = %v", m.weekStart)
	}
	m = press(t, m, runeKey('H'), runeKey('H'))
	if !m.weekStart.Equal(start.AddDate(0, 0, -7)) {
		t.Errorf("H: weekStart = %v", m.weekStart)
	}

	m = newTestModel(t)
	m = press(t, m, runeKey('h'))
	if m.cursor.Day != 6 || !m.weekStart.Equal(start.AddDate(0, 0, -7)) {
		t.Errorf("h from first day: day=%d weekStart=%v", m.cursor.Day, m.weekStart)
	}
	m = press(t, m, runeKey('l'))
	if m.cursor.Day != 0 || !m.weekStart.Equal(start) {
		t.Errorf("l from last day: day=%d weekStart=%v", m.cursor.Day, m.weekStart)
	}

	m.cursor.Row = 0
	m = press(t, m, runeKey('k'))
	if m.cursor.Row != 0 {
		t.Errorf("k at top: row = %d", m.cursor.Row)
	}
	m.cursor.Row = rowsPerDay - 1
	m = press(t, m, runeKey('j'))
	if m.cursor.Row != rowsPerDay-1 {
		t.Errorf("j at bottom: row = %d", m.cursor.Row)
	}

	m = press(t, m, runeKey('L'), runeKey('g'))
	if !m.weekStart.Equal(start) || m.cursor.Row != 20 {
		t.Errorf("g: weekStart=%v row=%d, want today at 10:00", m.weekStart, m.cursor.Row)
	}
}

func TestCopyLink(t *testing.T) {
	var copied string
	orig := commands.WriteClipboard
	commands.WriteClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { commands.WriteClipboard = orig })

	m := newTestModel(t)
	if err := m.session.Select(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Select: %v", err)
	}

	updated, cmd := m.Update(runeKey('y'))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	msg := cmd()
	if _, ok := msg.(commands.CopiedMsg); !ok {
		t.Fatalf("msg = %T, want CopiedMsg", msg)
	}
	if copied != "https://example.com/?events=DnIi-DnIl" {
		t.Errorf("clipboard = %q", copied)
	}

	updated, _ = updated.(Model).Update(msg)
	if got := updated.(Model).statusMsg; got != "Copied link to clipboard" {
		t.Errorf("status = %q", got)
	}
}

func TestCopyLink_ClipboardDisabled(t *testing.T) {
	m := newTestModel(t)
	m.config.UI.Clipboard = false
	if err := m.session.Select(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Select: %v", err)
	}

	m = press(t, m, runeKey('y'))
	if m.statusMsg != "https://example.com/?events=DnIi-DnIl" {
		t.Errorf("status = %q, want the link", m.statusMsg)
	}
}

func TestCopyLink_NothingSelected(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runeKey('y'))
	if m.statusMsg != "Nothing selected yet" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestClear(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('t'), runeKey('c'))

	if m.session.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.session.Len())
	}
	if m.showText {
		t.Error("text panel should close on clear")
	}
	if m.statusMsg != "Cleared" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestErrMsgShowsStatus(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(commands.ErrMsg{Err: errors.New("boom")})
	model := updated.(Model)
	if !model.statusErr || !strings.Contains(model.statusMsg, "boom") {
		t.Errorf("status = %q err=%v", model.statusMsg, model.statusErr)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m.height = 40
	short := m.visibleRows()
	m = press(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("expected full help")
	}
	if m.visibleRows() >= short {
		t.Errorf("full help should take grid rows: %d >= %d", m.visibleRows(), short)
	}
}

func TestWorkRows(t *testing.T) {
	tests := []struct {
		start, end         string
		wantStart, wantEnd int
	}{
		{start: "08:00", end: "20:00", wantStart: 16, wantEnd: 40},
		{start: "08:15", end: "20:10", wantStart: 16, wantEnd: 41},
		{start: "00:00", end: "24:00", wantStart: 0, wantEnd: 48},
		{start: "18:00", end: "09:00", wantStart: 0, wantEnd: 48},
		{start: "bad", end: "10:00", wantStart: 0, wantEnd: 20},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			cfg := config.Default()
			cfg.Display.DayStart = tt.start
			cfg.Display.DayEnd = tt.end
			start, end := workRows(cfg)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("workRows = %d..%d, want %d..%d", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
