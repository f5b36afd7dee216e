package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotshare/internal/session"
	"github.com/javiermolinar/slotshare/internal/share"
)

// Columns shown by decode; ticks are dropped on narrow terminals.
const (
	decodeTimeLayout   = "2006-01-02 15:04 MST"
	decodeTicksMinWide = 90
)

func (a *App) decodeCmd() *cobra.Command {
	var source scheduleSource

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Show the slots a link encodes",
		Long: `Decode a shared link or events value and list its slots with their
start and end times, durations and raw ticks.`,
		Example: `  slotshare decode --events DnIi-DnIl,DnI--DnJC
  slotshare decode --link "https://slotshare.app/?events=DnIi-DnIl" --tz UTC`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := source.load(a, true)
			if err != nil {
				return err
			}
			printDecodeTable(cmd.OutOrStdout(), sess, termWidth() >= decodeTicksMinWide)
			return nil
		},
	}
	source.register(cmd)

	return cmd
}

func printDecodeTable(w io.Writer, sess *session.Session, showTicks bool) {
	events := sess.Events()
	if len(events) == 0 {
		fmt.Fprintln(w, formatMuted("No slots."))
		return
	}

	header := fmt.Sprintf("%-3s  %-20s  %-20s  %-8s", "#", "START", "END", "LENGTH")
	if showTicks {
		header += "  TICKS"
	}
	fmt.Fprintln(w, formatHeader(header))

	for _, e := range events {
		row := fmt.Sprintf("%-3s  %-20s  %-20s  %-8s",
			e.ID,
			e.Start.Format(decodeTimeLayout),
			e.End.Format(decodeTimeLayout),
			formatLength(e.End.Sub(e.Start)),
		)
		if showTicks {
			start, _ := share.Tick(e.Start)
			end, _ := share.Tick(e.End)
			row += "  " + formatMuted(fmt.Sprintf("%d-%d", start, end))
		}
		fmt.Fprintln(w, row)
	}

	buckets := sess.Buckets()
	fmt.Fprintln(w, formatMuted(fmt.Sprintf("\n%d slot(s), %d line(s) across %d day(s)", len(events), buckets.Len(), len(buckets))))
}

// formatLength formats a duration as "1h30m", "45m" or "0m".
func formatLength(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
