package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Init sets up the process-wide default slog logger.
//
// The level string is one of debug, info, warn, error (case-insensitive);
// anything unrecognized falls back to info. Pretty output uses the
// human-readable text handler, otherwise logs are JSON.
func Init(writer io.Writer, level string, pretty bool) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if pretty {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
