package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, names := range [][]string{EnvApplicationID, EnvSecret, EnvAccessToken, EnvBaseURL} {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
application_id: app
secret: shh
per_page: 100
timeout: 10s
api_versions:
  people: "2025-01-01"
cache:
  enabled: true
  dir: /tmp/pco-cache
  ttl: 1m
allow_destructive: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.True(t, cfg.UsesBasicAuth())
	assert.Equal(t, 100, cfg.PerPage)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, map[string]string{
		"services": "2018-11-01",
		"groups":   "2023-07-10",
		"people":   "2025-01-01",
	}, cfg.APIVersions)
	assert.Equal(t, CacheConfig{Enabled: true, Dir: "/tmp/pco-cache", TTL: time.Minute}, cfg.Cache)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, DefaultMaxResponseSizeKB, cfg.MaxResponseSizeKB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.AllowDestructive)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLIENT_ID", "env-app")
	t.Setenv("PCO_SECRET", "env-secret")
	t.Setenv("CLIENT_SECRET", "ignored")
	t.Setenv("PCO_BASE_URL", "http://localhost:8080")
	path := writeConfig(t, "application_id: file-app\nsecret: file-secret\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-app", cfg.ApplicationID)
	assert.Equal(t, "env-secret", cfg.Secret)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PCO_ACCESS_TOKEN", "token")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "token", cfg.AccessToken)
	assert.False(t, cfg.UsesBasicAuth())
	assert.Equal(t, DefaultPerPage, cfg.PerPage)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PCO_ACCESS_TOKEN", "token")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no credentials", "per_page: 10\n", "ApplicationID"},
		{"id without secret", "application_id: app\n", "Secret"},
		{"per page", "access_token: t\nper_page: 500\n", "PerPage"},
		{"log level", "access_token: t\nlog_level: loud\n", "LogLevel"},
		{"base url", "access_token: t\nbase_url: not a url\n", "BaseURL"},
		{"yaml", "access_token: [\n", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
