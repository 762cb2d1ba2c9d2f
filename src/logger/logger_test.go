package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"unknown": zapcore.InfoLevel,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			l, err := New(name, "json")
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(want))
			if want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(want-1))
			}
		})
	}
}
