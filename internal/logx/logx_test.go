package logx

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	var logger = newLogger(&buf, zerolog.InfoLevel)
	logger.Debug().Msg("hidden")
	require.Empty(t, buf.String())

	logger.Info().Int("depth", 3).Msg("iteration complete")
	require.Contains(t, buf.String(), "iteration complete")
	require.Contains(t, buf.String(), "logx_test.go:")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}
