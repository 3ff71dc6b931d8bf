package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, 1<<20, cfg.Eval.MaxLineBytes)
	assert.False(t, cfg.Eval.Strict)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("FIXCALC_MAX_LINE", "4096")
	t.Setenv("FIXCALC_STRICT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 4096, cfg.Eval.MaxLineBytes)
	assert.True(t, cfg.Eval.Strict)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("FIXCALC_MAX_LINE", "not-a-number")

	cfg := LoadOrDefault()
	assert.Equal(t, 1<<20, cfg.Eval.MaxLineBytes)
}
