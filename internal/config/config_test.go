package config_test

import (
	"testing"

	"toko-core/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := config.FromViper(viper.New())

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "toko.db", cfg.DatabaseDSN)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, config.Features{}, cfg.Features)
}

func TestFromViper_Environment(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "host=localhost dbname=toko")
	t.Setenv("FEATURE_AUTH_ENABLED", "true")
	t.Setenv("FEATURE_SMS_ENABLED", "1")

	cfg := config.FromViper(viper.New())

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=localhost dbname=toko", cfg.DatabaseDSN)
	assert.True(t, cfg.Features.Auth)
	assert.True(t, cfg.Features.SMS)
	assert.False(t, cfg.Features.Payment)
}

func TestConfigValidate_JWTSecret(t *testing.T) {
	t.Run("auth disabled accepts the default secret", func(t *testing.T) {
		cfg := config.FromViper(viper.New())
		assert.Equal(t, config.DefaultJWTSecret, cfg.JWTSecret)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("auth enabled rejects the default secret", func(t *testing.T) {
		t.Setenv("FEATURE_AUTH_ENABLED", "true")
		cfg := config.FromViper(viper.New())
		assert.ErrorIs(t, cfg.Validate(), config.ErrInsecureJWTSecret)
	})

	t.Run("auth enabled rejects a blank secret", func(t *testing.T) {
		t.Setenv("FEATURE_AUTH_ENABLED", "true")
		t.Setenv("JWT_SECRET", "   ")
		cfg := config.FromViper(viper.New())
		assert.ErrorIs(t, cfg.Validate(), config.ErrInsecureJWTSecret)
	})

	t.Run("auth enabled accepts a real secret", func(t *testing.T) {
		t.Setenv("FEATURE_AUTH_ENABLED", "true")
		t.Setenv("JWT_SECRET", "s3cr3t-signing-key")
		cfg := config.FromViper(viper.New())
		assert.NoError(t, cfg.Validate())
	})
}
