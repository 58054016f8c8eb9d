package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

const DefaultLogLevel = slog.LevelInfo

// ParseLogLevel converts a level name such as "debug" to its slog.Level.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	switch {
	case strings.EqualFold(levelStr, slog.LevelDebug.String()):
		return slog.LevelDebug, nil
	case strings.EqualFold(levelStr, slog.LevelInfo.String()):
		return slog.LevelInfo, nil
	case strings.EqualFold(levelStr, slog.LevelWarn.String()):
		return slog.LevelWarn, nil
	case strings.EqualFold(levelStr, slog.LevelError.String()):
		return slog.LevelError, nil
	}

	return DefaultLogLevel, fmt.Errorf("unknown level string: '%s', defaulting to LevelInfo", levelStr)
}

// NewLogger returns a slog.Logger writing to w through zerolog, as JSON
// lines or in console format.
func NewLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var zerologLogger zerolog.Logger
	if json {
		zerologLogger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.StampMicro,
		}).With().Timestamp().Logger()
	}

	return slog.New(
		slogzerolog.Option{
			Level:  level,
			Logger: &zerologLogger,
		}.NewZerologHandler(),
	)
}

// ConfigureLogger installs NewLogger as the slog default.
func ConfigureLogger(w io.Writer, level slog.Level, json bool) {
	slog.SetDefault(NewLogger(w, level, json))
}
