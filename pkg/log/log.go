// Package log builds the [slog.Handler] used by shelf from the --log-level and
// --log-format flags, and buffers records while the TUI owns the terminal.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/muesli/termenv"

	charmlog "github.com/charmbracelet/log"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
	FormatText   Format = "text"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")

	// AllLevels lists the level names shown in flag help, most severe first.
	AllLevels = []string{"error", "warn", "info", "debug"}
	// AllFormats lists the format names shown in flag help.
	AllFormats = []string{string(FormatJSON), string(FormatLogfmt), string(FormatText)}
)

// levels maps accepted level names, including aliases, to slog levels.
var levels = map[string]slog.Level{
	"error":   slog.LevelError,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"info":    slog.LevelInfo,
	"debug":   slog.LevelDebug,
}

type handlerFunc func(w io.Writer, level slog.Level) slog.Handler

var handlers = map[Format]handlerFunc{
	FormatJSON: func(w io.Writer, level slog.Level) slog.Handler {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	},
	FormatLogfmt: func(w io.Writer, level slog.Level) slog.Handler {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	},
	FormatText: newTextHandler,
}

// CreateHandlerWithStrings creates a [slog.Handler] from a level and format
// name, as given on the command line. Names are case-insensitive.
func CreateHandlerWithStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	f, err := GetFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return CreateHandler(w, lvl, f), nil
}

// CreateHandler returns a handler writing format f to w. Unknown formats fall
// back to [FormatText].
func CreateHandler(w io.Writer, level slog.Level, f Format) slog.Handler {
	newHandler, ok := handlers[f]
	if !ok {
		newHandler = newTextHandler
	}

	return newHandler(w, level)
}

func GetLevel(level string) (slog.Level, error) {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}

	return lvl, nil
}

func GetFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if _, ok := handlers[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
	}

	return f, nil
}

// newTextHandler renders human readable, colored lines with
// [charmlog.Logger], which implements [slog.Handler].
func newTextHandler(w io.Writer, level slog.Level) slog.Handler {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	logger.SetColorProfile(termenv.ColorProfile())

	return logger
}
