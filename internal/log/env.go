package log

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// DebugEnv is the environment variable that enables debug logging.
const DebugEnv = "DEBUG"

// InitLoggerFromEnv sets the default slog logger to a debug level tint handler on stderr if DEBUG is set.
func InitLoggerFromEnv(noColor bool) {
	if DebugEnabled() {
		slog.SetDefault(NewLogger(os.Stderr, slog.LevelDebug, noColor))
	}
	slog.Debug("Logger initialized.")
}

func DebugEnabled() bool {
	debugValues := []string{"1", "true", "yes"}
	return slices.Contains(debugValues, strings.ToLower(os.Getenv(DebugEnv)))
}

func NewLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}
