package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tinyfox/internal/platform/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    zapcore.Level
		wantErr bool
	}{
		{raw: "", want: zapcore.InfoLevel},
		{raw: "debug", want: zapcore.DebugLevel},
		{raw: " WARN ", want: zapcore.WarnLevel},
		{raw: "error", want: zapcore.ErrorLevel},
		{raw: "trace", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := logging.ParseLevel(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, logging.ErrInvalidLevel)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	l, err := logging.New("debug", "console")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = logging.New("warn", "json")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = logging.New("info", "xml")
	require.ErrorIs(t, err, logging.ErrInvalidFormat)
}

func TestKV(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	kv := logging.NewKV(zap.New(core)).With("component", "links")

	kv.Info("link created", "code", "abc")
	kv.Warn("generated code collided", "attempt", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "link created", entries[0].Message)
	require.Equal(t, map[string]any{"component": "links", "code": "abc"}, entries[0].ContextMap())
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.EqualValues(t, 2, entries[1].ContextMap()["attempt"])
}
