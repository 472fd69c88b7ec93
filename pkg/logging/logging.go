package logging

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Setup installs a tinted slog handler as the process default logger.
// All binaries call this first so the progress trace shares one format.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}
