package slot

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event is the render-ready shape handed to calendar surfaces.
type Event struct {
	ID     string
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool
}

// Interval returns the event's time span.
func (e Event) Interval() Interval {
	return Interval{Start: e.Start, End: e.End}
}

// NewSelectedEvent wraps an interactively selected interval with a random ID.
func NewSelectedEvent(iv Interval) Event {
	return Event{
		ID:    uuid.NewString(),
		Start: iv.Start,
		End:   iv.End,
	}
}

// EventsFromSchedule builds events whose IDs are their sequence index, the
// form used when a schedule is restored from a link.
func EventsFromSchedule(s Schedule) []Event {
	events := make([]Event, len(s))
	for i, iv := range s {
		events[i] = Event{
			ID:    strconv.Itoa(i),
			Start: iv.Start,
			End:   iv.End,
		}
	}
	return events
}

// ScheduleFromEvents extracts the intervals of events, preserving order.
func ScheduleFromEvents(events []Event) Schedule {
	s := make(Schedule, len(events))
	for i, e := range events {
		s[i] = e.Interval()
	}
	return s
}

// DedupeEvents drops events whose span repeats an earlier one, keeping the
// first occurrence and its ID.
func DedupeEvents(events []Event) []Event {
	out := make([]Event, 0, len(events))
	seen := make(map[Key]struct{}, len(events))
	for _, e := range events {
		k := e.Interval().Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}
