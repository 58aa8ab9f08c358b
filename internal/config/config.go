// Package config loads the application configuration from file, environment
// and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/spigell/vagas/internal/resume"
	"github.com/spigell/vagas/internal/store"
	"github.com/spigell/vagas/internal/vagas"
)

const appDir = "vagas"

type Config struct {
	API         *vagas.Config `mapstructure:"api"`
	Form        *FormConfig   `mapstructure:"form"`
	Cache       *CacheConfig  `mapstructure:"cache"`
	HistoryFile string        `mapstructure:"history-file"`
	Exclude     *struct {
		Companies []string `mapstructure:"companies"`
	} `mapstructure:"exclude"`
	MetricsFile string `mapstructure:"metrics-file"`
}

type FormConfig struct {
	Layout string `mapstructure:"layout"`
}

type CacheConfig struct {
	Backend  string `mapstructure:"backend"`
	Path     string `mapstructure:"path"`
	RedisURL string `mapstructure:"redis-url"`
	RedisKey string `mapstructure:"redis-key"`
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	api := vagas.DefaultConfig()
	v.SetDefault("api.timeout", api.Timeout)
	v.SetDefault("api.max-retries", api.MaxRetries)
	v.SetDefault("api.initial-backoff", api.InitialBackoff)
	v.SetDefault("api.user-agent", api.UserAgent)
	v.SetDefault("api.rate-limit", api.RateLimit)

	v.SetDefault("form.layout", resume.LayoutSingle.String())

	v.SetDefault("cache.backend", store.BackendFile)
	v.SetDefault("cache.path", filepath.Join(stateDir(), "curriculos.json"))
	v.SetDefault("cache.redis-key", store.DefaultRedisKey)
	v.SetDefault("history-file", filepath.Join(stateDir(), "applications.json"))
}

// BindEnv maps environment variables to configuration keys.
func BindEnv(v *viper.Viper) error {
	bindings := [][]string{
		{"api.url", "VAGAS_API_URL", "VITE_API_URL"},
		{"api.token-file", "VAGAS_TOKEN_FILE"},
		{"cache.redis-url", "VAGAS_REDIS_URL"},
		{"metrics-file", "VAGAS_METRICS_FILE"},
	}

	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return fmt.Errorf("binding %s environment variable: %w", strings.Join(b[1:], "/"), err)
		}
	}

	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.API == nil {
		c.API = vagas.DefaultConfig()
	}

	if _, err := c.API.Validate(); err != nil {
		if errors.Is(err, vagas.ErrMissingBaseURL) {
			return fmt.Errorf("%w (set VAGAS_API_URL, --api-url or api.url)", err)
		}
		return err
	}

	if c.Form == nil {
		c.Form = &FormConfig{}
	}
	if _, err := resume.ParseLayout(c.Form.Layout); err != nil {
		return err
	}

	if c.Cache == nil {
		c.Cache = &CacheConfig{Backend: store.BackendFile}
	}

	switch strings.ToLower(strings.TrimSpace(c.Cache.Backend)) {
	case "", store.BackendFile:
		if strings.TrimSpace(c.Cache.Path) == "" {
			return fmt.Errorf("cache.path is required for the %s cache backend", store.BackendFile)
		}
	case store.BackendRedis:
		if strings.TrimSpace(c.Cache.RedisURL) == "" {
			return fmt.Errorf("cache.redis-url is required for the %s cache backend", store.BackendRedis)
		}
	default:
		return fmt.Errorf("unknown cache backend %q (expected %s or %s)", c.Cache.Backend, store.BackendFile, store.BackendRedis)
	}

	return nil
}

// Layout returns the configured form layout.
func (c *Config) Layout() resume.Layout {
	if c.Form == nil {
		return resume.LayoutSingle
	}
	layout, _ := resume.ParseLayout(c.Form.Layout)
	return layout
}

// ExcludedCompanies returns the companies whose jobs are hidden from listings.
func (c *Config) ExcludedCompanies() []string {
	if c.Exclude == nil {
		return nil
	}
	return c.Exclude.Companies
}

func stateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDir)
}
