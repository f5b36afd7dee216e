package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotshare/internal/session"
)

func (a *App) textCmd() *cobra.Command {
	var source scheduleSource

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Print the day-by-day summary of a shared schedule",
		Long: `Print the plain-text summary of a schedule, one block per calendar day,
in the configured timezone (or --tz).`,
		Example: `  slotshare text --link "https://slotshare.app/?events=DnIi-DnIl"
  slotshare text --events DnIi-DnIl --tz Europe/Madrid`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := source.load(a, true)
			if err != nil {
				return err
			}
			printText(cmd.OutOrStdout(), sess)
			return nil
		},
	}
	source.register(cmd)

	return cmd
}

// printText writes the summary with bold day labels.
func printText(w io.Writer, sess *session.Session) {
	text := sess.GenerateText()
	if text == "" {
		fmt.Fprintln(w, formatMuted("No slots selected."))
		return
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasSuffix(line, ":") && !strings.HasPrefix(line, "\t") {
			line = formatHeader(line)
		}
		fmt.Fprintln(w, line)
	}
}
