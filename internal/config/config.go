// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is the placeholder secret used when JWT_SECRET is unset.
const DefaultJWTSecret = "change-me"

// ErrInsecureJWTSecret is returned by Validate when auth is enabled with no real signing key.
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a non-default value when FEATURE_AUTH_ENABLED is true")

// Features are the optional integrations that can be switched on per deployment.
type Features struct {
	Auth    bool `json:"auth"`
	Payment bool `json:"payment"`
	Email   bool `json:"email"`
	SMS     bool `json:"sms"`
	Storage bool `json:"storage"`
}

// Config holds every setting the service reads at startup.
type Config struct {
	AppPort           string
	DBDriver          string
	DatabaseDSN       string
	RabbitMQURL       string
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	CORSAllowOrigins  string
	Features          Features
}

// Load reads .env (when present) and the process environment into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment only")
	}
	return FromViper(viper.New())
}

// FromViper applies defaults to v, binds it to the environment and builds a Config.
func FromViper(v *viper.Viper) Config {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "toko.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	for _, name := range []string{"AUTH", "PAYMENT", "EMAIL", "SMS", "STORAGE"} {
		v.SetDefault("FEATURE_"+name+"_ENABLED", false)
	}
	v.AutomaticEnv()

	return Config{
		AppPort:           v.GetString("APP_PORT"),
		DBDriver:          strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		AdminUsername:     v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		CORSAllowOrigins:  v.GetString("CORS_ALLOW_ORIGINS"),
		Features: Features{
			Auth:    v.GetBool("FEATURE_AUTH_ENABLED"),
			Payment: v.GetBool("FEATURE_PAYMENT_ENABLED"),
			Email:   v.GetBool("FEATURE_EMAIL_ENABLED"),
			SMS:     v.GetBool("FEATURE_SMS_ENABLED"),
			Storage: v.GetBool("FEATURE_STORAGE_ENABLED"),
		},
	}
}

// Validate rejects settings the server must not start with.
func (c Config) Validate() error {
	if c.Features.Auth {
		secret := strings.TrimSpace(c.JWTSecret)
		if secret == "" || secret == DefaultJWTSecret {
			return ErrInsecureJWTSecret
		}
	}
	return nil
}
