package tui

import (
	"time"

	"github.com/javiermolinar/slotshare/internal/dateutil"
	"github.com/javiermolinar/slotshare/internal/share"
	"github.com/javiermolinar/slotshare/internal/slot"
)

const (
	rowMinutes   = int(share.TickDuration / time.Minute)
	rowsPerDay   = 24 * 60 / rowMinutes
	daysPerWeek  = 7
	minColWidth  = 8
	timeColWidth = 6
)

// cellState is what a grid cell shows.
type cellState int

const (
	cellEmpty cellState = iota
	cellSlot
	cellPending
)

// dayIndex returns how many calendar days t is after weekStart, clamped to
// the week.
func dayIndex(weekStart, t time.Time) int {
	a := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 12, 0, 0, 0, time.UTC)
	b := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	d := int(b.Sub(a).Hours() / 24)
	return min(max(d, 0), daysPerWeek-1)
}

// rowOf returns the half-hour row containing t's wall clock.
func rowOf(t time.Time) int {
	return (t.Hour()*60 + t.Minute()) / rowMinutes
}

// cellStart returns the instant a cell begins.
func (m Model) cellStart(p Position) time.Time {
	return dateutil.At(m.weekStart.AddDate(0, 0, p.Day), p.Row*rowMinutes)
}

// cellEnd returns the instant a cell ends; the last row ends at next midnight.
func (m Model) cellEnd(p Position) time.Time {
	return dateutil.At(m.weekStart.AddDate(0, 0, p.Day), (p.Row+1)*rowMinutes)
}

// selectionRange returns the span from the anchor cell to the cursor cell,
// inclusive of both. The anchor is an instant, so it stays put when the
// displayed week changes. Without an anchor it is the cursor cell.
func (m Model) selectionRange() (start, end time.Time) {
	start, end = m.cellStart(m.cursor), m.cellEnd(m.cursor)
	if m.anchor == nil {
		return start, end
	}
	if m.anchor.Before(start) {
		start = *m.anchor
	}
	if anchorEnd := m.anchor.Add(share.TickDuration); anchorEnd.After(end) {
		end = anchorEnd
	}
	return start, end
}

// covers reports whether iv shows in the cell [cs, ce). Zero-length slots
// restored from a link show in the cell holding their instant.
func covers(iv slot.Interval, cs, ce time.Time) bool {
	if iv.Start.Equal(iv.End) {
		return !iv.Start.Before(cs) && iv.Start.Before(ce)
	}
	return iv.Start.Before(ce) && iv.End.After(cs)
}

// gridStates computes the state of every cell in the displayed week.
func (m Model) gridStates() [daysPerWeek][rowsPerDay]cellState {
	var states [daysPerWeek][rowsPerDay]cellState

	weekFrom := m.cellStart(Position{Day: 0, Row: 0})
	weekTo := m.cellEnd(Position{Day: daysPerWeek - 1, Row: rowsPerDay - 1})
	var visible []slot.Interval
	for _, iv := range m.session.Intervals() {
		if covers(iv, weekFrom, weekTo) {
			visible = append(visible, iv)
		}
	}

	var pStart, pEnd time.Time
	if m.anchor != nil {
		pStart, pEnd = m.selectionRange()
	}

	for d := 0; d < daysPerWeek; d++ {
		for r := 0; r < rowsPerDay; r++ {
			p := Position{Day: d, Row: r}
			cs, ce := m.cellStart(p), m.cellEnd(p)
			if m.anchor != nil && cs.Before(pEnd) && ce.After(pStart) {
				states[d][r] = cellPending
				continue
			}
			for _, iv := range visible {
				if covers(iv, cs, ce) {
					states[d][r] = cellSlot
					break
				}
			}
		}
	}
	return states
}
