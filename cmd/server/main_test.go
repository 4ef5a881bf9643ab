package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, envErr, err := loadConfig([]string{"-port", "9100"})
	require.NoError(t, err)
	require.NoError(t, envErr)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigInvalidEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg, envErr, err := loadConfig([]string{"-host", "127.0.0.1"})
	require.NoError(t, err)
	require.Error(t, envErr)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	core, logs := observer.New(zapcore.WarnLevel)
	warnConfig(zap.New(core), envErr)

	entries := logs.FilterMessage("invalid environment configuration, using defaults").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "RATE_LIMIT_RPS")
}

func TestLoadConfigBadFlag(t *testing.T) {
	_, _, err := loadConfig([]string{"-nope"})
	assert.Error(t, err)
}

func TestWarnConfigQuietWhenValid(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	warnConfig(zap.New(core), nil)
	assert.Zero(t, logs.Len())
}
