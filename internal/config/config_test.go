package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smartchef.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 4, cfg.Shopping.LookupConcurrency)
	assert.Error(t, cfg.Validate(), "missing secret must fail validation")
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
database:
  path: /tmp/chef.db
auth:
  jwt_secret: `+testSecret+`
  token_ttl: 2h
log:
  format: json
importer:
  timeout: 3s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/chef.db", cfg.Database.Path)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.Importer.Timeout)
	assert.Equal(t, "json", cfg.Log.Format)
	// Untouched sections keep their defaults
	assert.Equal(t, 5, cfg.Auth.LoginBurst)
	assert.NoError(t, cfg.Validate())
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9090\"\n")
	t.Setenv("SMARTCHEF_ADDR", ":7070")
	t.Setenv("SMARTCHEF_JWT_SECRET", testSecret)
	t.Setenv("SMARTCHEF_TOKEN_TTL", "30m")
	t.Setenv("SMARTCHEF_LOOKUP_CONCURRENCY", "8")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 8, cfg.Shopping.LookupConcurrency)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "reading config file")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [unterminated"))
		assert.ErrorContains(t, err, "parsing YAML")
	})

	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv("SMARTCHEF_TOKEN_TTL", "forever")
		_, err := Load("")
		assert.ErrorContains(t, err, "SMARTCHEF_TOKEN_TTL")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, false},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, false},
		{"zero burst", func(c *Config) { c.Auth.LoginBurst = 0 }, false},
		{"zero concurrency", func(c *Config) { c.Shopping.LookupConcurrency = 0 }, false},
		{"negative max bytes", func(c *Config) { c.Importer.MaxBytes = -1 }, false},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, false},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.JWTSecret = testSecret
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
