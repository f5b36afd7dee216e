// Package session owns the schedule state behind a calendar surface.
//
// A Session is driven from a single goroutine (a bubbletea Update loop or one
// CLI command). Every operation computes a new event slice with the pure
// functions in slot, summary and share and swaps it in whole, so a failed
// operation never leaves a partial result behind.
package session

import (
	"fmt"
	"time"

	"github.com/javiermolinar/slotshare/internal/applog"
	"github.com/javiermolinar/slotshare/internal/share"
	"github.com/javiermolinar/slotshare/internal/slot"
	"github.com/javiermolinar/slotshare/internal/summary"
)

// Options configures a Session.
type Options struct {
	Location *time.Location // display zone, defaults to time.Local
	BaseURL  string         // origin + path for share links
	Logger   applog.Logger
}

// Session holds the current schedule and the last generated text.
type Session struct {
	events    []slot.Event
	text      string
	formatter summary.Formatter
	baseURL   string
	log       applog.Logger
}

// New creates an empty Session.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = applog.Nop{}
	}
	return &Session{
		formatter: summary.NewFormatter(opts.Location),
		baseURL:   opts.BaseURL,
		log:       log,
	}
}

// Location returns the display zone.
func (s *Session) Location() *time.Location {
	return s.formatter.Location()
}

// Select handles a calendar selection of [start, end).
func (s *Session) Select(start, end time.Time) error {
	candidate, err := slot.NewInterval(start.In(s.Location()), end.In(s.Location()))
	if err != nil {
		return fmt.Errorf("selecting slot: %w", err)
	}

	merged := slot.Merge(slot.ScheduleFromEvents(s.events), candidate)

	// Merge keeps existing intervals at their index and appends at most one,
	// so widened intervals keep the ID of the event they came from.
	events := make([]slot.Event, len(merged))
	for i, iv := range merged {
		if i < len(s.events) {
			events[i] = s.events[i]
			events[i].Start, events[i].End = iv.Start, iv.End
			continue
		}
		events[i] = slot.NewSelectedEvent(iv)
	}

	s.events = slot.DedupeEvents(events)
	s.log.Debugw("slot selected", map[string]any{
		"start": candidate.Start.Format(time.RFC3339),
		"end":   candidate.End.Format(time.RFC3339),
		"slots": len(s.events),
	})
	return nil
}

// Restore replaces the schedule with the one encoded in value, which may be a
// full link, a query string or a bare events value. On failure the error is
// logged and returned and the current schedule is left as it was.
func (s *Session) Restore(value string) error {
	encoded, err := share.ParseURL(value)
	if err != nil {
		s.log.Errorw("failed to parse events from link", err, map[string]any{"value": value})
		return fmt.Errorf("restoring schedule: %w", err)
	}
	if encoded == "" {
		return nil
	}

	intervals, err := share.Decode(encoded, s.Location())
	if err != nil {
		s.log.Errorw("failed to parse events from link", err, map[string]any{"value": encoded})
		return fmt.Errorf("restoring schedule: %w", err)
	}

	if slot.Schedule(intervals).Overlapping() {
		s.log.Warnf("link has overlapping slots, keeping them as sent")
	}
	s.events = slot.EventsFromSchedule(intervals)
	s.text = ""
	s.log.Infof("restored %d slots from link", len(intervals))
	return nil
}

// Clear drops the schedule and the generated text.
func (s *Session) Clear() {
	s.events = nil
	s.text = ""
}

// GenerateText renders the day-grouped summary and keeps it as Text.
func (s *Session) GenerateText() string {
	s.text = summary.Text(s.Intervals(), s.formatter)
	return s.text
}

// Text returns the last generated summary.
func (s *Session) Text() string {
	return s.text
}

// Buckets returns the schedule grouped by day, chronologically.
func (s *Session) Buckets() summary.Buckets {
	return summary.GroupByDay(s.Intervals().Sorted(), s.formatter)
}

// Encoded returns the events value for the current schedule.
func (s *Session) Encoded() (string, error) {
	return share.Encode(s.Intervals())
}

// ShareURL returns the full shareable link for the current schedule.
func (s *Session) ShareURL() (string, error) {
	encoded, err := s.Encoded()
	if err != nil {
		return "", fmt.Errorf("encoding schedule: %w", err)
	}
	link, err := share.BuildURL(s.baseURL, encoded)
	if err != nil {
		return "", err
	}
	return link, nil
}

// Events returns a copy of the render-ready events.
func (s *Session) Events() []slot.Event {
	out := make([]slot.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Intervals returns the schedule in selection order.
func (s *Session) Intervals() slot.Schedule {
	return slot.ScheduleFromEvents(s.events)
}

// Len returns the number of selected intervals.
func (s *Session) Len() int {
	return len(s.events)
}

// Formatter returns the session's time formatter.
func (s *Session) Formatter() summary.Formatter {
	return s.formatter
}
