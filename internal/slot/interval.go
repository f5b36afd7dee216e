// Package slot defines the schedule domain types for slotshare.
package slot

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrZeroTime       = errors.New("start and end must be set")
	ErrEndBeforeStart = errors.New("end time must be after start time")
)

// Interval is a selected time block. Start is inclusive, End exclusive.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval creates an Interval with validation.
func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, ErrZeroTime
	}
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: %s - %s", ErrEndBeforeStart,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps returns true if the two intervals share a positive stretch of time.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Touches returns true if one interval ends exactly where the other starts.
func (iv Interval) Touches(other Interval) bool {
	return iv.Start.Equal(other.End) || iv.End.Equal(other.Start)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Key is the millisecond signature used for de-duplication.
type Key struct {
	StartMillis int64
	EndMillis   int64
}

// Key returns the interval's millisecond signature.
func (iv Interval) Key() Key {
	return Key{StartMillis: iv.Start.UnixMilli(), EndMillis: iv.End.UnixMilli()}
}

// In returns the interval with both ends converted to loc.
func (iv Interval) In(loc *time.Location) Interval {
	return Interval{Start: iv.Start.In(loc), End: iv.End.In(loc)}
}

func (iv Interval) String() string {
	return iv.Start.Format("2006-01-02 15:04") + " - " + iv.End.Format("2006-01-02 15:04")
}
