package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel - Represents the log level
type LogLevel string

const (
	// DebugLevel is for debug messages
	DebugLevel LogLevel = "debug"
	// InfoLevel is for informational messages
	InfoLevel LogLevel = "info"
	// WarnLevel is for warning messages
	WarnLevel LogLevel = "warn"
	// ErrorLevel is for error messages
	ErrorLevel LogLevel = "error"
)

// Config - Represents logger configuration
//   - Level is the log level, unknown levels fall back to info
//   - Pretty enables human-readable console output instead of JSON
//   - Output is the output writer (defaults to os.Stderr)
type Config struct {
	Level  LogLevel
	Pretty bool
	Output io.Writer
}

// New - Returns a new zerolog.Logger configured from the given config. It does not touch the global logger.
func New(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(writer).Level(ParseLevel(config.Level)).With().Timestamp().Logger()
}

// ParseLevel - Maps a LogLevel to the matching zerolog.Level
func ParseLevel(level LogLevel) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Nop - Returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
