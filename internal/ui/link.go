package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// copyToClipboard writes to the system clipboard.
var copyToClipboard = clipboard.WriteAll

func (a *App) linkCmd() *cobra.Command {
	var (
		source   scheduleSource
		copyLink bool
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the shareable link for a schedule",
		Long: `Print the shareable link for a schedule, built on share.base_url.

Given --link, the slots are re-encoded onto the configured base URL.`,
		Example: `  slotshare link --events DnIi-DnIl
  slotshare link --events DnIi-DnIl --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := source.load(a, true)
			if err != nil {
				return err
			}
			link, err := sess.ShareURL()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatLink(link))

			if !copyLink {
				return nil
			}
			if !a.config.UI.Clipboard {
				fmt.Fprintln(cmd.ErrOrStderr(), formatWarn("Clipboard is disabled in config (ui.clipboard = false)"))
				return nil
			}
			if err := copyToClipboard(link); err != nil {
				return fmt.Errorf("copying link: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), formatOK("Copied to clipboard"))
			return nil
		},
	}
	source.register(cmd)
	cmd.Flags().BoolVar(&copyLink, "copy", false, "Also copy the link to the clipboard")

	return cmd
}
