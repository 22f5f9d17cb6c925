package config_test

import (
	"testing"
	"time"

	"rvclassifieds/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(newViper(map[string]any{
		"JWT_SECRET":   "s3cret",
		"DATABASE_DSN": "host=localhost",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TokenTTL)
	assert.Equal(t, "noreply@rvclassifieds.com", cfg.Mail.From)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, 10, cfg.Server.AuthRateLimit)
}

func TestFromViper_RequiresSecret(t *testing.T) {
	_, err := config.FromViper(newViper(map[string]any{"DATABASE_DSN": "host=localhost"}))
	assert.ErrorIs(t, err, config.ErrMissingSecret)
}

func TestFromViper_RequiresDSN(t *testing.T) {
	_, err := config.FromViper(newViper(map[string]any{"JWT_SECRET": "s3cret"}))
	assert.ErrorIs(t, err, config.ErrMissingDSN)
}

func TestFromViper_ParsesTokenTTL(t *testing.T) {
	cfg, err := config.FromViper(newViper(map[string]any{
		"JWT_SECRET":   "s3cret",
		"DATABASE_DSN": "file::memory:",
		"TOKEN_TTL":    "5m",
	}))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.JWT.TokenTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}
