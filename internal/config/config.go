// Package config loads service settings from the environment and an
// optional config file using viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting.
type Config struct {
	AppPort          string
	LogLevel         string
	LogFormat        string
	DatabaseDriver   string
	DatabaseDSN      string
	BlobDir          string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	PreferenceTTL    time.Duration
	RabbitMQURL      string
	JWTSecret        string
	AdminAPIKeyHash  string
	IdentityAPIURL   string
	IdentityAPIKey   string
	IdentityTimeout  time.Duration
	SessionCookie    string
	MaxUploadBytes   int
	SeedCatalog      bool
	CORSAllowOrigins string
	// RateLimitRequests per RateLimitWindow per IP on admin and session
	// routes. Zero disables limiting.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:tamrah.db?cache=shared")
	v.SetDefault("BLOB_DIR", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PREFERENCE_TTL", "8760h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_API_KEY_HASH", "")
	v.SetDefault("IDENTITY_API_URL", "")
	v.SetDefault("IDENTITY_API_KEY", "")
	v.SetDefault("IDENTITY_TIMEOUT", "5s")
	v.SetDefault("SESSION_COOKIE_NAME", "mocha_session_token")
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("SEED_CATALOG", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_REQUESTS", 30)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
}

// Load reads configuration from the environment. When CONFIG_FILE is
// set, that file is read first and environment variables override it.
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

// FromViper builds a Config from v and checks it.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:           v.GetString("APP_PORT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		DatabaseDriver:    strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		BlobDir:           v.GetString("BLOB_DIR"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		PreferenceTTL:     v.GetDuration("PREFERENCE_TTL"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		AdminAPIKeyHash:   v.GetString("ADMIN_API_KEY_HASH"),
		IdentityAPIURL:    v.GetString("IDENTITY_API_URL"),
		IdentityAPIKey:    v.GetString("IDENTITY_API_KEY"),
		IdentityTimeout:   v.GetDuration("IDENTITY_TIMEOUT"),
		SessionCookie:     v.GetString("SESSION_COOKIE_NAME"),
		MaxUploadBytes:    v.GetInt("MAX_UPLOAD_BYTES"),
		SeedCatalog:       v.GetBool("SEED_CATALOG"),
		CORSAllowOrigins:  v.GetString("CORS_ALLOW_ORIGINS"),
		RateLimitRequests: v.GetInt("RATE_LIMIT_REQUESTS"),
		RateLimitWindow:   v.GetDuration("RATE_LIMIT_WINDOW"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want sqlite or postgres)", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.RateLimitRequests > 0 && c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	if c.SessionCookie == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME is required")
	}
	if !c.AdminAuthConfigured() {
		return fmt.Errorf("no admin authentication configured: set IDENTITY_API_URL, JWT_SECRET or ADMIN_API_KEY_HASH")
	}
	return nil
}

// AdminAuthConfigured reports whether at least one admin authenticator can be built.
func (c *Config) AdminAuthConfigured() bool {
	return c.IdentityAPIURL != "" || c.JWTSecret != "" || c.AdminAPIKeyHash != ""
}
