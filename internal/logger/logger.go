package logger

import (
	"log/slog"
	"os"
)

// Init installs a JSON slog handler as the process default and returns it.
func Init(service string) *slog.Logger {
	l := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("service", service))
	slog.SetDefault(l)
	return l
}
