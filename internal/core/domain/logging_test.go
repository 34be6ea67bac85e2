package domain_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/projsync/internal/core/domain"
)

func TestParseLoggingLevel(t *testing.T) {
	tests := []struct {
		input string
		want  domain.LoggingLevel
	}{
		{"", domain.LoggingLevelInfo},
		{"off", domain.LoggingLevelOff},
		{"VERBOSE", domain.LoggingLevelVerbose},
		{" trace ", domain.LoggingLevelTrace},
		{"warn", domain.LoggingLevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseLoggingLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.input != "" {
				assert.Equal(t, got, mustParse(t, got.String()))
			}
		})
	}

	_, err := domain.ParseLoggingLevel("chatty")
	require.ErrorIs(t, err, domain.ErrUnknownLoggingLevel)
}

func mustParse(t *testing.T, name string) domain.LoggingLevel {
	t.Helper()
	l, err := domain.ParseLoggingLevel(name)
	require.NoError(t, err)
	return l
}

func TestLoggingLevel_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, domain.LoggingLevelVerbose.SlogLevel())
	assert.Equal(t, slog.LevelDebug, domain.LoggingLevelTrace.SlogLevel())
	assert.Equal(t, slog.LevelInfo, domain.LoggingLevelInfo.SlogLevel())
	assert.Equal(t, slog.LevelWarn, domain.LoggingLevelWarn.SlogLevel())
	assert.Equal(t, slog.LevelError, domain.LoggingLevelFatal.SlogLevel())
	assert.Greater(t, domain.LoggingLevelOff.SlogLevel(), slog.LevelError)
}
