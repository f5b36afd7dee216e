// Package summary condenses a schedule into per-day text.
package summary

import "time"

// Style selects how a Formatter renders an instant.
type Style string

const (
	StyleShortTime Style = "short-time" // 9:00 AM
	StyleLongDate  Style = "long-date"  // January 1, 2024
)

// Layouts for each style. 12-hour clock, no leading zero on the hour.
var styleLayouts = map[Style]string{
	StyleShortTime: "3:04 PM",
	StyleLongDate:  "January 2, 2006",
}

// Formatter renders instants in a fixed location.
type Formatter struct {
	loc *time.Location
}

// NewFormatter returns a Formatter for loc. A nil loc means time.Local.
func NewFormatter(loc *time.Location) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{loc: loc}
}

// Location returns the formatter's location.
func (f Formatter) Location() *time.Location {
	if f.loc == nil {
		return time.Local
	}
	return f.loc
}

// Format renders t in the given style. Unknown styles fall back to RFC 3339.
func (f Formatter) Format(t time.Time, style Style) string {
	layout, ok := styleLayouts[style]
	if !ok {
		layout = time.RFC3339
	}
	return t.In(f.Location()).Format(layout)
}
