package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotshare/internal/session"
)

// errNoSchedule is returned when a command needs a schedule and got none.
var errNoSchedule = errors.New("no schedule given: pass --link or --events")

// scheduleSource holds the --link/--events flags shared by several commands.
type scheduleSource struct {
	link   string
	events string
}

func (s *scheduleSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.link, "link", "", "Shared link to start from")
	cmd.Flags().StringVar(&s.events, "events", "", "Events value of a shared link")
	cmd.MarkFlagsMutuallyExclusive("link", "events")
}

// value returns whichever flag was set. A bare events value is handed over
// as a query so it goes through the same parsing as a full link.
func (s *scheduleSource) value() string {
	if s.link != "" {
		return s.link
	}
	if s.events != "" {
		return "events=" + s.events
	}
	return ""
}

// load restores the schedule into a new session. With required set, an
// empty source is an error.
func (s *scheduleSource) load(a *App, required bool) (*session.Session, error) {
	sess, err := a.newSession()
	if err != nil {
		return nil, err
	}

	value := s.value()
	if value == "" {
		if required {
			return nil, errNoSchedule
		}
		return sess, nil
	}
	if err := sess.Restore(value); err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}
	return sess, nil
}
