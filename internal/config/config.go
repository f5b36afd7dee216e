// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/slotshare/internal/applog"
)

// Config holds the application configuration.
type Config struct {
	Share   ShareConfig   `toml:"share"`
	Display DisplayConfig `toml:"display"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// ShareConfig holds share link settings.
type ShareConfig struct {
	BaseURL string `toml:"base_url"` // origin + path the events parameter is appended to
}

// DisplayConfig holds calendar display settings.
type DisplayConfig struct {
	Timezone  string `toml:"timezone"`   // IANA name, "" or "local" for the system zone
	DayStart  string `toml:"day_start"`  // e.g., "08:00", first row shown in the grid
	DayEnd    string `toml:"day_end"`    // e.g., "20:00"
	WeekStart string `toml:"week_start"` // "monday" or "sunday"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme     string `toml:"theme"`     // "mocha", "macchiato", "frappe", "latte"
	Clipboard bool   `toml:"clipboard"` // copy links to the system clipboard
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error", "disabled"
	File  string `toml:"file"`  // empty logs to stderr
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Share: ShareConfig{
			BaseURL: "https://slotshare.app/",
		},
		Display: DisplayConfig{
			Timezone:  "local",
			DayStart:  "08:00",
			DayEnd:    "20:00",
			WeekStart: "monday",
		},
		UI: UIConfig{
			Theme:     "frappe",
			Clipboard: true,
		},
		Log: LogConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slotshare", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLOTSHARE_BASE_URL"); v != "" {
		cfg.Share.BaseURL = v
	}

	if v := os.Getenv("SLOTSHARE_TIMEZONE"); v != "" {
		cfg.Display.Timezone = v
	}
	if v := os.Getenv("SLOTSHARE_DAY_START"); v != "" {
		cfg.Display.DayStart = v
	}
	if v := os.Getenv("SLOTSHARE_DAY_END"); v != "" {
		cfg.Display.DayEnd = v
	}
	if v := os.Getenv("SLOTSHARE_WEEK_START"); v != "" {
		cfg.Display.WeekStart = v
	}

	if v := os.Getenv("SLOTSHARE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("SLOTSHARE_CLIPBOARD"); v != "" {
		cfg.UI.Clipboard = v != "0" && !strings.EqualFold(v, "false")
	}

	if v := os.Getenv("SLOTSHARE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SLOTSHARE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Share.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", c.Share.BaseURL)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if err := validateTime(c.Display.DayStart, "day_start"); err != nil {
		return err
	}
	if err := validateTime(c.Display.DayEnd, "day_end"); err != nil {
		return err
	}
	if c.Display.DayStart >= c.Display.DayEnd {
		return errors.New("day_start must be before day_end")
	}

	switch strings.ToLower(c.Display.WeekStart) {
	case "monday", "sunday":
	default:
		return fmt.Errorf("week_start must be monday or sunday, got %q", c.Display.WeekStart)
	}

	if _, err := applog.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	switch strings.ToLower(c.Display.Timezone) {
	case "", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Display.Timezone, err)
	}
	return loc, nil
}

// FirstWeekday returns the configured first day of the week.
func (c *Config) FirstWeekday() time.Weekday {
	if strings.EqualFold(c.Display.WeekStart, "sunday") {
		return time.Sunday
	}
	return time.Monday
}

// LogOptions returns the logger setup derived from the config.
func (c *Config) LogOptions() applog.Options {
	return applog.Options{Level: c.Log.Level, File: c.Log.File}
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
