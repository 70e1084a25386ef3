package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "file", cfg.Dataset.Source)
	assert.Equal(t, 10*time.Minute, cfg.Dataset.TTL)
	assert.Equal(t, "snake", cfg.Dataset.Convention)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "campaigns", cfg.Psql.Table)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DATASET_SOURCE", "s3")
	t.Setenv("DATASET_TTL", "0s")
	t.Setenv("S3_BUCKET", "marketing")
	t.Setenv("S3_KEY", "clean.csv")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_TTL", "1h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "s3", cfg.Dataset.Source)
	assert.Equal(t, time.Duration(0), cfg.Dataset.TTL)
	assert.Equal(t, "marketing", cfg.S3.Bucket)
	assert.Equal(t, "clean.csv", cfg.S3.Key)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}
