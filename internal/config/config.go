// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Flat-file data and public asset roots
	DataDir   string
	PublicDir string

	// Valkey (Redis-compatible cache). Sessions and the response cache fall
	// back to in-memory / disabled when ValkeyHost is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	ValkeyDB       int

	// Admin bootstrap credentials, used only when admins.json is empty.
	AdminEmail      string
	AdminPassword   string
	AdminRequire2FA bool

	// S3-compatible object storage (optional; local PUBLIC_DIR otherwise)
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first when present; real environment variables win. Returns an
// error if critical values are missing in production mode.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DataDir:   envOrDefault("DATA_DIR", "data"),
		PublicDir: envOrDefault("PUBLIC_DIR", "public"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "fsn1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "kambel-public"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	db, err := strconv.Atoi(envOrDefault("VALKEY_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("VALKEY_DB must be an integer: %w", err)
	}
	cfg.ValkeyDB = db

	if v := os.Getenv("ADMIN_REQUIRE_2FA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_REQUIRE_2FA must be a boolean: %w", err)
		}
		cfg.AdminRequire2FA = b
	}

	if cfg.Env == "production" {
		if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
			return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set together in production")
		}
		if cfg.AdminPassword != "" && len(cfg.AdminPassword) < 12 {
			return nil, fmt.Errorf("ADMIN_PASSWORD must be at least 12 characters in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasValkey reports whether a Valkey host is configured.
func (c *Config) HasValkey() bool {
	return c.ValkeyHost != ""
}

// HasS3 reports whether S3 storage is fully configured.
func (c *Config) HasS3() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
