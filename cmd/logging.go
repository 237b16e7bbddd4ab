package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogging installs a tinted slog handler on stderr. Debug level is only
// enabled with --verbose so default runs stay quiet beyond the status lines.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}
