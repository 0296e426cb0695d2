package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestToZerologLevel(t *testing.T) {
	require.Equal(t, zerolog.TraceLevel, ToZerologLevel(TraceLevel))
	require.Equal(t, zerolog.DebugLevel, ToZerologLevel(DebugLevel))
	require.Equal(t, zerolog.WarnLevel, ToZerologLevel(WarnLevel))
	require.Equal(t, zerolog.FatalLevel, ToZerologLevel(FatalLevel))
	require.Equal(t, zerolog.TraceLevel, ToZerologLevel(42))
	require.Equal(t, "WARN", LogLevelToString(WarnLevel))
}

func TestCreateLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := CreateLogger(WarnLevel, &buf)
	logger.Info().Msg("hidden")
	require.Equal(t, 0, buf.Len())
	logger.Warn().Str("stage", "0").Msg("shown")
	require.Contains(t, buf.String(), "\"message\":\"shown\"")
	require.Contains(t, buf.String(), "\"stage\":\"0\"")
}

func TestParseLevel(t *testing.T) {
	for level := TraceLevel; level <= FatalLevel; level++ {
		require.Equal(t, level, ParseLevel(LogLevelToString(level)))
	}
	require.Equal(t, DebugLevel, ParseLevel(" debug "))
	require.Equal(t, ErrorLevel, ParseLevel("Error"))
	require.Equal(t, InfoLevel, ParseLevel("verbose"))
	require.Equal(t, InfoLevel, ParseLevel(""))
}

func TestCreateLoggerLeavesTimeFormatAlone(t *testing.T) {
	before := zerolog.TimeFieldFormat
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	defer func() { zerolog.TimeFieldFormat = before }()

	var buf bytes.Buffer
	logger := CreateLogger(InfoLevel, &buf)
	logger.Info().Msg("stamped")
	require.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	require.Regexp(t, `"time":[0-9]+`, buf.String())
}
