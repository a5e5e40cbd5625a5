package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL           string            `yaml:"base_url" validate:"required,url"`
	ApplicationID     string            `yaml:"application_id" validate:"required_without=AccessToken"`
	Secret            string            `yaml:"secret" validate:"required_with=ApplicationID"`
	AccessToken       string            `yaml:"access_token"`
	APIVersions       map[string]string `yaml:"api_versions"`
	PerPage           int               `yaml:"per_page" validate:"min=1,max=100"`
	Concurrency       int               `yaml:"concurrency" validate:"min=1"`
	Timeout           time.Duration     `yaml:"timeout" validate:"min=0"`
	Cache             CacheConfig       `yaml:"cache"`
	LogLevel          string            `yaml:"log_level" validate:"oneof=debug info warn error"`
	MaxResponseSizeKB int               `yaml:"max_response_size_kb"`
	AllowDestructive  bool              `yaml:"allow_destructive"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// UsesBasicAuth reports whether requests authenticate with the
// application id and secret rather than an access token.
func (c *Config) UsesBasicAuth() bool {
	return c.ApplicationID != "" && c.Secret != ""
}

func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "planningcenter", "config.yaml")
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "planningcenter")
}

func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv lets credentials and the base URL come from the environment.
// Environment values override the file.
func (c *Config) applyEnv() {
	if v := lookupEnv(EnvApplicationID); v != "" {
		c.ApplicationID = v
	}
	if v := lookupEnv(EnvSecret); v != "" {
		c.Secret = v
	}
	if v := lookupEnv(EnvAccessToken); v != "" {
		c.AccessToken = v
	}
	if v := lookupEnv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
}

func lookupEnv(names []string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	versions := make(map[string]string, len(DefaultAPIVersions))
	for app, v := range DefaultAPIVersions {
		versions[app] = v
	}
	for app, v := range c.APIVersions {
		versions[app] = v
	}
	c.APIVersions = versions

	if c.PerPage == 0 {
		c.PerPage = DefaultPerPage
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = defaultCacheDir()
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	// Default response size guard to 50KB if not set.
	if c.MaxResponseSizeKB <= 0 {
		c.MaxResponseSizeKB = DefaultMaxResponseSizeKB
	}
}
