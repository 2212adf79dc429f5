package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:4317", cfg.OTLP.Endpoint)
	assert.Equal(t, "inventory-api", cfg.OTLP.ServiceName)
	assert.Equal(t, "admin@example.com", cfg.Auth.Email)
	assert.Empty(t, cfg.Auth.RestoreEmail)
	assert.True(t, cfg.Seed)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("AUTH_EMAIL", "ops@example.com")
	t.Setenv("AUTH_PASSWORD", "s3cret")
	t.Setenv("SEED_CATALOG", "false")

	cfg := LoadConfig()

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "ops@example.com", cfg.Auth.Email)
	assert.Equal(t, "s3cret", cfg.Auth.Password)
	assert.False(t, cfg.Seed)
}

func TestLoadConfig_BadBoolFallsBackToDefault(t *testing.T) {
	t.Setenv("SEED_CATALOG", "not-a-bool")

	cfg := LoadConfig()
	assert.True(t, cfg.Seed)
}
