package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup initializes the global slog logger with JSON output to stdout.
func Setup() {
	slog.SetDefault(slog.New(stdoutHandler(os.Stdout)))
}

// Install makes the default logger write to stdout and to the system_logs sink.
func Install(sink *PGHandler) {
	slog.SetDefault(slog.New(NewMultiHandler(stdoutHandler(os.Stdout), sink)))
}

func stdoutHandler(w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}
