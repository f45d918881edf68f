package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a logger writing colorized output to w. The TUI owns
// stdout, so w is normally a log file.
func New(w io.Writer, level slog.Level) *slog.Logger {
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h).With("app", "tidewatch")
}

// Discard returns a logger that drops everything, used when no log file
// is configured.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
