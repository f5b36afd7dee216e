package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotshare/internal/tui/theme"
)

func testTheme() *theme.Theme {
	return &theme.Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Slot:        "#00ff00",
		Pending:     "#0000ff",
		Today:       "#ffff00",
		Warning:     "#ff00ff",
	}
}

func TestStylesBackgrounds(t *testing.T) {
	th := testTheme()
	palette := theme.NewPalette(th)
	styles := NewStyles(th)

	assertBg := func(t *testing.T, name string, style lipgloss.Style, want lipgloss.Color) {
		t.Helper()
		bg, ok := style.GetBackground().(lipgloss.Color)
		if !ok {
			t.Fatalf("%s background type = %T, want lipgloss.Color", name, style.GetBackground())
		}
		if bg != want {
			t.Fatalf("%s background = %q, want %q", name, bg, want)
		}
	}

	assertBg(t, "DayHeaderStyle", styles.DayHeaderStyle, palette.BgHighlight)
	assertBg(t, "SlotCellStyle", styles.SlotCellStyle, palette.SlotBg)
	assertBg(t, "SlotCursorStyle", styles.SlotCursorStyle, palette.SlotBgAlt)
	assertBg(t, "PendingCellStyle", styles.PendingCellStyle, palette.PendingBg)
	assertBg(t, "CursorStyle", styles.CursorStyle, palette.BgSelection)
}

func TestStylesCursorDiffersFromSlot(t *testing.T) {
	styles := NewStyles(testTheme())

	if styles.SlotCursorStyle.GetBackground() == styles.SlotCellStyle.GetBackground() {
		t.Error("cursor on a slot should use a different shade")
	}
	if !styles.PendingCursorStyle.GetUnderline() {
		t.Error("pending cursor should be underlined")
	}
}
