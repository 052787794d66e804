package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "palette", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "stdout", cfg.TracingExporter)
	assert.False(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBHost: "localhost", DBName: "palette", TracingExporter: "stdout"}
	require.NoError(t, cfg.Validate())

	cfg.TracingExporter = "jaeger"
	assert.Error(t, cfg.Validate())

	cfg.TracingExporter = "otlp"
	require.NoError(t, cfg.Validate())

	cfg.DBName = ""
	assert.Error(t, cfg.Validate())

	cfg = &Config{DBName: "palette", TracingExporter: "stdout"}
	assert.Error(t, cfg.Validate())
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
}
