// Package applog provides component loggers backed by zerolog.
package applog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging surface used across slotshare.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Errorw(msg string, err error, fields map[string]any)
}

// Options configures the shared log sink.
type Options struct {
	Level string // "debug", "info", "warn", "error", "disabled"
	File  string // empty logs to stderr
	Dev   bool   // human-readable console output
}

var (
	mu     sync.Mutex
	sink   io.Writer = os.Stderr
	closer io.Closer
	level  = zerolog.WarnLevel
	dev    = strings.ToLower(os.Getenv("APP_ENV")) == "dev"
)

// Setup points all loggers created afterwards at the configured sink.
// The TUI owns the terminal, so it should log to a file.
func Setup(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	var c io.Closer
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w, c = f, f
	}

	if closer != nil {
		_ = closer.Close()
	}
	sink, closer, level = w, c, lvl
	dev = dev || opts.Dev
	return nil
}

// Close releases the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	sink = os.Stderr
}

// ParseLevel maps a config level name to a zerolog level. Empty means warn.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a Logger tagged with component.
func New(component string) Logger {
	mu.Lock()
	defer mu.Unlock()
	return newZerolog(sink, component, level, dev)
}

// NewWithWriter returns a Logger writing JSON to w at the given level.
func NewWithWriter(w io.Writer, component string, lvl zerolog.Level) Logger {
	return newZerolog(w, component, lvl, false)
}

func newZerolog(w io.Writer, component string, lvl zerolog.Level, console bool) Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &zerologLogger{log: z}
}

type zerologLogger struct {
	log zerolog.Logger
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

func (l *zerologLogger) Errorw(msg string, err error, fields map[string]any) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debugf(string, ...any)                {}
func (Nop) Debugw(string, map[string]any)        {}
func (Nop) Infof(string, ...any)                 {}
func (Nop) Warnf(string, ...any)                 {}
func (Nop) Errorf(string, ...any)                {}
func (Nop) Errorw(string, error, map[string]any) {}
