package summary

import (
	"time"

	"github.com/javiermolinar/slotshare/internal/slot"
)

// Bucket holds the pieces of a schedule falling on one calendar day.
type Bucket struct {
	Label     string // long-form date, e.g. "January 1, 2024"
	Date      time.Time
	Intervals []slot.Interval
}

// Buckets is an ordered list of day buckets, in first-seen label order.
type Buckets []Bucket

// GroupByDay splits intervals at each local midnight and files every piece
// under the day its start falls on. Pass chronologically sorted input for a
// chronological result.
func GroupByDay(intervals []slot.Interval, f Formatter) Buckets {
	loc := f.Location()
	var out Buckets
	index := make(map[string]int)

	for _, iv := range intervals {
		start := iv.Start.In(loc)
		end := iv.End.In(loc)
		for start.Before(end) {
			next := startOfNextDay(start)
			pieceEnd := end
			if next.Before(end) {
				pieceEnd = next
			}

			label := f.Format(start, StyleLongDate)
			i, ok := index[label]
			if !ok {
				i = len(out)
				index[label] = i
				out = append(out, Bucket{Label: label, Date: startOfDay(start)})
			}
			out[i].Intervals = append(out[i].Intervals, slot.Interval{Start: start, End: pieceEnd})

			start = next
		}
	}
	return out
}

// Len returns the total number of pieces across all buckets.
func (b Buckets) Len() int {
	n := 0
	for _, bucket := range b {
		n += len(bucket.Intervals)
	}
	return n
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfNextDay uses calendar arithmetic so days of 23 or 25 hours split
// at the real local midnight.
func startOfNextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}
