package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotshare/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color

	// Title style
	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style

	// Header styles
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle    lipgloss.Style
	TimeColumnOffStyle lipgloss.Style // outside day_start..day_end

	// Cells; widths are applied at render time
	EmptyCellStyle     lipgloss.Style
	OffHoursCellStyle  lipgloss.Style
	SlotCellStyle      lipgloss.Style
	PendingCellStyle   lipgloss.Style
	CursorStyle        lipgloss.Style
	SlotCursorStyle    lipgloss.Style
	PendingCursorStyle lipgloss.Style

	// Generated text panel
	TextPanelStyle lipgloss.Style

	// Prompt
	PromptStyle     lipgloss.Style
	PromptTextStyle lipgloss.Style
	PromptHintStyle lipgloss.Style

	// Status message
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style

	Help help.Styles
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent)
	s.SubtleStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(palette.Fg).
		Background(palette.BgHighlight)
	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(palette.Today)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Width(timeColWidth)
	s.TimeColumnOffStyle = s.TimeColumnStyle.
		Foreground(palette.FgMuted)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)
	s.OffHoursCellStyle = s.EmptyCellStyle.
		Faint(true)
	s.SlotCellStyle = lipgloss.NewStyle().
		Background(palette.SlotBg).
		Foreground(palette.TextOnSlot).
		Bold(true)
	s.PendingCellStyle = lipgloss.NewStyle().
		Background(palette.PendingBg).
		Foreground(palette.TextOnPending)
	s.CursorStyle = lipgloss.NewStyle().
		Background(palette.BgSelection).
		Foreground(palette.Fg)
	s.SlotCursorStyle = s.SlotCellStyle.
		Background(palette.SlotBgAlt)
	s.PendingCursorStyle = s.PendingCellStyle.
		Bold(true).
		Underline(true)

	s.TextPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Accent).
		Foreground(palette.Fg).
		Padding(0, 1)

	s.PromptStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Bold(true)
	s.PromptTextStyle = lipgloss.NewStyle().
		Foreground(palette.Fg)
	s.PromptHintStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Italic(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Fg)
	s.StatusErrorStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Bold(true)

	s.Help = help.New().Styles
	s.Help.ShortKey = s.Help.ShortKey.Foreground(palette.Accent)
	s.Help.FullKey = s.Help.FullKey.Foreground(palette.Accent)
	s.Help.ShortDesc = s.Help.ShortDesc.Foreground(palette.FgMuted)
	s.Help.FullDesc = s.Help.FullDesc.Foreground(palette.FgMuted)

	return s
}
