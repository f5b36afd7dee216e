package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotshare/internal/config"
	"github.com/javiermolinar/slotshare/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the effective configuration: defaults, overlaid with the config
file, overlaid with SLOTSHARE_* environment variables.

Example:
  slotshare config
  slotshare config init
  slotshare config edit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s", a.configPath)
			if _, err := os.Stat(a.configPath); os.IsNotExist(err) {
				fmt.Fprint(out, formatMuted(" (not created yet, run slotshare config init)"))
			}
			fmt.Fprint(out, "\n\n")
			printConfig(out, a.config)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			}
			if err := config.Default().SaveTo(a.configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Edit the config file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})

	return cmd
}

func (a *App) runConfigInteractive(in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)

	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	reader := bufio.NewReader(in)

	cfg.Share.BaseURL = promptValue(reader, out, "Share base URL", cfg.Share.BaseURL)
	cfg.Display.Timezone = promptValue(reader, out, "Timezone (IANA name or local)", cfg.Display.Timezone)
	cfg.Display.DayStart = promptValue(reader, out, "Day start", cfg.Display.DayStart)
	cfg.Display.DayEnd = promptValue(reader, out, "Day end", cfg.Display.DayEnd)
	cfg.Display.WeekStart = promptValue(reader, out, "Week start (monday or sunday)", cfg.Display.WeekStart)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.Clipboard = promptYesNo(reader, out, "Copy links to the clipboard?", cfg.UI.Clipboard)
	cfg.Log.Level = promptValue(reader, out, "Log level", cfg.Log.Level)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\n"+formatOK("Configuration saved!"))
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, formatHeader("[share]"))
	fmt.Fprintf(w, "  base_url   = %s\n", cfg.Share.BaseURL)
	fmt.Fprintln(w, "\n"+formatHeader("[display]"))
	fmt.Fprintf(w, "  timezone   = %s\n", cfg.Display.Timezone)
	fmt.Fprintf(w, "  day_start  = %s\n", cfg.Display.DayStart)
	fmt.Fprintf(w, "  day_end    = %s\n", cfg.Display.DayEnd)
	fmt.Fprintf(w, "  week_start = %s\n", cfg.Display.WeekStart)
	fmt.Fprintln(w, "\n"+formatHeader("[ui]"))
	fmt.Fprintf(w, "  theme      = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  clipboard  = %t\n", cfg.UI.Clipboard)
	fmt.Fprintln(w, "\n"+formatHeader("[log]"))
	fmt.Fprintf(w, "  level      = %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  file       = %s\n", cfg.Log.File)
}

func promptYesNo(reader *bufio.Reader, w io.Writer, question string, current bool) bool {
	hint := "y/N"
	if current {
		hint = "Y/n"
	}
	fmt.Fprintf(w, "  %s [%s]: ", question, hint)
	input, _ := reader.ReadString('\n')
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return current
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptTheme(reader *bufio.Reader, w io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, w, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(w, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
