// Package config loads SmartChef settings from an optional YAML file,
// a .env file and SMARTCHEF_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// MinSecretLength is the shortest accepted JWT signing secret.
const MinSecretLength = 32

// Config holds all SmartChef configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Shopping ShoppingConfig `yaml:"shopping"`
	Importer ImporterConfig `yaml:"importer"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr       string `yaml:"addr"`
	StaticPath string `yaml:"static_path"`
	CORSOrigin string `yaml:"cors_origin"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig configures token issuance and login throttling.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	LoginPerMinute float64       `yaml:"login_per_minute"`
	LoginBurst     int           `yaml:"login_burst"`
}

// LogConfig selects level and handler format (text or json).
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ShoppingConfig tunes shopping-list generation.
type ShoppingConfig struct {
	LookupConcurrency int `yaml:"lookup_concurrency"`
}

// ImporterConfig tunes the recipe page fetcher.
type ImporterConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	MaxBytes  int64         `yaml:"max_bytes"`
	UserAgent string        `yaml:"user_agent"`
}

// Default returns the built-in configuration. JWTSecret is empty, so Validate
// fails until one is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:       ":8080",
			StaticPath: "./frontend/dist",
			CORSOrigin: "*",
		},
		Database: DatabaseConfig{
			Path: "./data/smartchef.db",
		},
		Auth: AuthConfig{
			TokenTTL:       24 * time.Hour,
			LoginPerMinute: 10,
			LoginBurst:     5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Shopping: ShoppingConfig{
			LookupConcurrency: 4,
		},
		Importer: ImporterConfig{
			Timeout:   15 * time.Second,
			MaxBytes:  5 << 20,
			UserAgent: "SmartChefImporter/1.0",
		},
	}
}

// Load builds the configuration. A missing .env file is ignored; an empty
// path skips the YAML file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies SMARTCHEF_* environment variables.
func (c *Config) applyEnvOverrides() error {
	setString("SMARTCHEF_ADDR", &c.Server.Addr)
	setString("SMARTCHEF_STATIC_PATH", &c.Server.StaticPath)
	setString("SMARTCHEF_CORS_ORIGIN", &c.Server.CORSOrigin)
	setString("SMARTCHEF_DB_PATH", &c.Database.Path)
	setString("SMARTCHEF_JWT_SECRET", &c.Auth.JWTSecret)
	setString("SMARTCHEF_LOG_LEVEL", &c.Log.Level)
	setString("SMARTCHEF_LOG_FORMAT", &c.Log.Format)
	setString("SMARTCHEF_IMPORTER_USER_AGENT", &c.Importer.UserAgent)

	if v := os.Getenv("SMARTCHEF_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SMARTCHEF_TOKEN_TTL: %w", err)
		}
		c.Auth.TokenTTL = d
	}
	if v := os.Getenv("SMARTCHEF_IMPORTER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SMARTCHEF_IMPORTER_TIMEOUT: %w", err)
		}
		c.Importer.Timeout = d
	}
	if v := os.Getenv("SMARTCHEF_LOOKUP_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMARTCHEF_LOOKUP_CONCURRENCY: %w", err)
		}
		c.Shopping.LookupConcurrency = n
	}
	return nil
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks the configuration before the server starts.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret not configured (set SMARTCHEF_JWT_SECRET or auth.jwt_secret)")
	}
	if len(c.Auth.JWTSecret) < MinSecretLength {
		return fmt.Errorf("JWT secret must be at least %d characters", MinSecretLength)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	if c.Auth.LoginPerMinute <= 0 || c.Auth.LoginBurst <= 0 {
		return fmt.Errorf("auth login rate and burst must be positive")
	}
	if c.Shopping.LookupConcurrency <= 0 {
		return fmt.Errorf("shopping.lookup_concurrency must be positive")
	}
	if c.Importer.Timeout <= 0 || c.Importer.MaxBytes <= 0 {
		return fmt.Errorf("importer timeout and max_bytes must be positive")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Log.Format)
	}
	return nil
}
