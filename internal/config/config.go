package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	RabbitMQ RabbitMQConfig
	Mail     MailConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port          string
	Environment   string
	CORSOrigin    string
	AuthRateLimit int
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Driver string // postgres or sqlite
	DSN    string
}

// JWTConfig holds token signing configuration.
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// RabbitMQConfig holds broker configuration. An empty URL disables the broker.
type RabbitMQConfig struct {
	URL string
}

// MailConfig holds outbound mail settings.
type MailConfig struct {
	From string
}

var (
	ErrMissingSecret = errors.New("JWT_SECRET is required")
	ErrMissingDSN    = errors.New("DATABASE_DSN is required")
)

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("AUTH_RATE_LIMIT", 10)
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("TOKEN_TTL", 30*time.Minute)
	v.SetDefault("MAIL_FROM", "noreply@rvclassifieds.com")
	v.SetDefault("RABBITMQ_URL", "")
}

// Load reads configuration from the environment and, when present, from the
// file named by CONFIG_FILE.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:          v.GetString("APP_PORT"),
			Environment:   v.GetString("ENVIRONMENT"),
			CORSOrigin:    v.GetString("CORS_ORIGIN"),
			AuthRateLimit: v.GetInt("AUTH_RATE_LIMIT"),
		},
		Database: DatabaseConfig{
			Driver: v.GetString("DATABASE_DRIVER"),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		JWT: JWTConfig{
			Secret:   v.GetString("JWT_SECRET"),
			TokenTTL: v.GetDuration("TOKEN_TTL"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: v.GetString("RABBITMQ_URL"),
		},
		Mail: MailConfig{
			From: v.GetString("MAIL_FROM"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.Database.DSN == "" {
		return nil, ErrMissingDSN
	}
	if cfg.JWT.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.JWT.TokenTTL)
	}
	return cfg, nil
}
