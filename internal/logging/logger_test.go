package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, development := range []bool{true, false} {
		logger, err := NewLogger(development)
		require.NoError(t, err)
		require.NotNil(t, logger)
		logger.Sync()
	}
}

func TestMustNewLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		MustNewLogger(true)
	})
}

func TestNewCLILogger_Levels(t *testing.T) {
	verbose := NewCLILogger(true)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))

	quiet := NewCLILogger(false)
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel))
}
