package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_Levels(t *testing.T) {
	l, err := newLogger("debug", "console")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	l, err = newLogger("not-a-level", "json")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}

func TestGet_InitializesOnce(t *testing.T) {
	first := Get()
	require.NotNil(t, first)
	assert.Same(t, first, Get())
	assert.NoError(t, Init("debug", "json"))
	assert.Same(t, first, Get())
}
