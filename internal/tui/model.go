// Package tui provides the terminal week calendar for slotshare.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotshare/internal/applog"
	"github.com/javiermolinar/slotshare/internal/config"
	"github.com/javiermolinar/slotshare/internal/dateutil"
	"github.com/javiermolinar/slotshare/internal/session"
	"github.com/javiermolinar/slotshare/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
)

// Position represents a cursor position in the grid.
type Position struct {
	Day int // 0 is the first day of the displayed week
	Row int // half-hour row, 0 is midnight
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	session *session.Session
	config  *config.Config
	log     applog.Logger
	nowFunc func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	weekStart time.Time // first day of the displayed week, midnight in the session zone
	cursor    Position
	anchor    *time.Time // start of the cell a pending selection began in
	mode      Mode
	showText  bool

	// Work hours, as rows
	dayStartRow int
	dayEndRow   int

	// Components
	keys   keyMap
	help   help.Model
	prompt textinput.Model

	// Terminal dimensions and layout
	width        int
	height       int
	colWidth     int
	scrollOffset int

	// Messages
	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithStatus shows msg when the TUI starts.
func WithStatus(msg string, isErr bool) ModelOption {
	return func(m *Model) {
		m.statusMsg = msg
		m.statusErr = isErr
	}
}

// WithNow overrides the clock.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// WithLogger sets the logger.
func WithLogger(log applog.Logger) ModelOption {
	return func(m *Model) {
		m.log = log
	}
}

// New creates a new TUI model over sess.
func New(sess *session.Session, cfg *config.Config, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "/goto tomorrow, /open <link>, /add 9:00 10:30"
	ti.Prompt = "> "

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.PromptTextStyle

	m := &Model{
		session:  sess,
		config:   cfg,
		log:      applog.Nop{},
		nowFunc:  time.Now,
		theme:    t,
		styles:   styles,
		mode:     ModeNormal,
		keys:     newKeyMap(),
		help:     help.New(),
		prompt:   ti,
		colWidth: minColWidth,
	}
	m.help.Styles = styles.Help

	for _, opt := range opts {
		opt(m)
	}

	m.dayStartRow, m.dayEndRow = workRows(cfg)
	m.jumpTo(m.nowFunc())
	m.cursor.Row = m.dayStartRow
	m.scrollOffset = m.dayStartRow
	m.focusFirstSlot()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI.
func Run(sess *session.Session, cfg *config.Config, opts ...ModelOption) error {
	model := New(sess, cfg, opts...)
	p := tea.NewProgram(*model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// workRows converts the configured day bounds to grid rows.
func workRows(cfg *config.Config) (start, end int) {
	start, end = 0, rowsPerDay
	if m, err := dateutil.ParseClock(cfg.Display.DayStart); err == nil {
		start = m / rowMinutes
	}
	if m, err := dateutil.ParseClock(cfg.Display.DayEnd); err == nil {
		end = (m + rowMinutes - 1) / rowMinutes
	}
	if end <= start {
		return 0, rowsPerDay
	}
	return start, end
}

// jumpTo shows the week containing t and puts the cursor on its day.
func (m *Model) jumpTo(t time.Time) {
	t = t.In(m.session.Location())
	m.weekStart, _ = dateutil.WeekRange(t, m.config.FirstWeekday())
	m.cursor.Day = dayIndex(m.weekStart, t)
}

// focusFirstSlot moves the view to the earliest selected slot, if any.
func (m *Model) focusFirstSlot() {
	intervals := m.session.Intervals().Sorted()
	if len(intervals) == 0 {
		return
	}
	first := intervals[0].Start.In(m.session.Location())
	m.jumpTo(first)
	m.cursor.Row = rowOf(first)
	m.scrollOffset = m.cursor.Row
}
