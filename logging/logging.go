package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLevel translates a string representation, in any case, to a log level enum.
// Unrecognized names produce InfoLevel.
func ParseLevel(name string) int {
	name = strings.TrimSpace(name)
	for level := TraceLevel; level <= FatalLevel; level++ {
		if strings.EqualFold(name, LogLevelToString(level)) {
			return level
		}
	}
	return InfoLevel
}

// ToZerologLevel translates a log level enum to the equivalent zerolog.Level
func ToZerologLevel(level int) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.TraceLevel
	}
}

// CreateLogger produces a timestamped zerolog.Logger writing to w at the given level.
// Timestamps follow zerolog's process-wide TimeFieldFormat, which is left untouched.
func CreateLogger(level int, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(ToZerologLevel(level)).With().Timestamp().Logger()
}
