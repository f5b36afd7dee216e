package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotshare/internal/dateutil"
	"github.com/javiermolinar/slotshare/internal/session"
)

func (a *App) addCmd() *cobra.Command {
	var (
		endDate string
		source  scheduleSource
	)

	cmd := &cobra.Command{
		Use:   "add DATE START END",
		Short: "Add a time slot and print the new link and text",
		Long: `Add a time slot to a schedule and print the resulting link and summary.

DATE accepts YYYY-MM-DD, today, tomorrow, a weekday name or next-<weekday>.
START and END accept 24-hour (09:00, 24:00) or 12-hour (9am, 9:30pm) times.
Slots that overlap or touch an existing one are merged into it.

Start from an existing schedule with --link or --events to extend it.`,
		Example: `  slotshare add 2024-01-01 09:00 10:30
  slotshare add friday 9am 11am --events DnIi-DnIl
  slotshare add 2024-01-01 23:00 01:00 --end-date 2024-01-02`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := source.load(a, false)
			if err != nil {
				return err
			}
			if err := a.addSlot(sess, args[0], args[1], args[2], endDate); err != nil {
				return err
			}
			return printSchedule(cmd.OutOrStdout(), sess)
		},
	}

	cmd.Flags().StringVar(&endDate, "end-date", "", "Date END falls on, for slots past midnight (default: DATE)")
	source.register(cmd)

	return cmd
}

// addSlot parses the date and clock arguments and selects the slot.
func (a *App) addSlot(sess *session.Session, date, start, end, endDate string) error {
	loc := sess.Location()
	now := a.now()

	day, err := dateutil.ParseDate(date, now, loc)
	if err != nil {
		return err
	}
	endDay := day
	if endDate != "" {
		if endDay, err = dateutil.ParseDate(endDate, now, loc); err != nil {
			return err
		}
	}

	from, err := dateutil.ParseClock(start)
	if err != nil {
		return err
	}
	to, err := dateutil.ParseClock(end)
	if err != nil {
		return err
	}

	return sess.Select(dateutil.At(day, from), dateutil.At(endDay, to))
}

// printSchedule writes the share link followed by the summary text.
func printSchedule(w io.Writer, sess *session.Session) error {
	link, err := sess.ShareURL()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s\n\n", formatHeader("Link:"), formatLink(link))
	printText(w, sess)
	return nil
}
