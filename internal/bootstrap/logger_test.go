package bootstrap_test

import (
	"testing"

	"office-attendance/internal/bootstrap"
	"office-attendance/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	logger, err := bootstrap.NewLogger(config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = bootstrap.NewLogger(config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = bootstrap.NewLogger(config.LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
