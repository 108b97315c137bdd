package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	defer viper.Reset()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Seed)
}

func TestLoadConfigFromEnv(t *testing.T) {
	defer viper.Reset()

	t.Setenv("REDIS_URL", "redis://:pw@cache.internal:6380/2")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "redis://:pw@cache.internal:6380/2", cfg.RedisURL)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Seed)
}
