package summary

import (
	"strings"

	"github.com/javiermolinar/slotshare/internal/slot"
)

// FormatText renders buckets as
//
//	January 1, 2024:
//		9:00 AM - 11:00 AM
//
// with days separated by a blank line. No buckets yields "".
func FormatText(buckets Buckets, f Formatter) string {
	days := make([]string, 0, len(buckets))
	for _, b := range buckets {
		var sb strings.Builder
		sb.WriteString(b.Label)
		sb.WriteString(":")
		for _, iv := range b.Intervals {
			sb.WriteString("\n\t")
			sb.WriteString(f.Format(iv.Start, StyleShortTime))
			sb.WriteString(" - ")
			sb.WriteString(f.Format(iv.End, StyleShortTime))
		}
		days = append(days, sb.String())
	}
	return strings.Join(days, "\n\n")
}

// Text sorts a schedule, groups it by day and renders it.
func Text(s slot.Schedule, f Formatter) string {
	return FormatText(GroupByDay(s.Sorted(), f), f)
}
