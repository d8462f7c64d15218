// Package logging builds the slog handler pbctl installs as the default
// logger. Terminals get tinter's colored one-line records; pipes and files get
// JSON so the output stays machine readable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// Format selects the log output format. FormatAuto picks text on a terminal
// and JSON elsewhere.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a --log-format value to a Format. "tint" and "human" are
// accepted as text; anything unrecognised is FormatAuto.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "text", "tint", "human":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// ParseLevel accepts anything slog.Level.UnmarshalText does ("debug",
// "WARN", "info+2"). Unparseable input is Info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// IsTTY reports whether w is an *os.File attached to a terminal, including
// Cygwin/MSYS ptys.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// NewHandler returns the handler for w. Text mode stamps records with
// millisecond wall-clock time.
func NewHandler(w io.Writer, format Format, level slog.Level) slog.Handler {
	if format == FormatText || (format == FormatAuto && IsTTY(w)) {
		return tinter.NewHandler(w, &tinter.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// Setup configures the global slog logger to write to w. Call once after
// flag/viper parsing.
func Setup(w io.Writer, format Format, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(w, format, level)))
}
