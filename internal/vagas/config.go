package vagas

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout        = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultInitialBackoff = time.Second
	DefaultUserAgent      = "spigell/vagas"
)

// Config is built once at startup and handed to New.
type Config struct {
	URL            string        `mapstructure:"url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxRetries     int           `mapstructure:"max-retries"`
	InitialBackoff time.Duration `mapstructure:"initial-backoff"`
	UserAgent      string        `mapstructure:"user-agent"`
	TokenFile      string        `mapstructure:"token-file"`
	// RateLimit caps outgoing attempts per second. Zero means unlimited.
	RateLimit float64 `mapstructure:"rate-limit"`
}

// DefaultConfig returns a config with every default set and no base URL.
func DefaultConfig() *Config {
	return &Config{
		Timeout:        DefaultTimeout,
		MaxRetries:     DefaultMaxRetries,
		InitialBackoff: DefaultInitialBackoff,
		UserAgent:      DefaultUserAgent,
	}
}

// Validate checks the config and returns the parsed base URL.
func (c *Config) Validate() (*url.URL, error) {
	if c == nil || strings.TrimSpace(c.URL) == "" {
		return nil, ErrMissingBaseURL
	}

	raw := strings.TrimSpace(c.URL)
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, raw, err)
	}

	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidBaseURL, raw)
	}

	if base.Host == "" {
		return nil, fmt.Errorf("%w: %q: host is empty", ErrInvalidBaseURL, raw)
	}

	if c.Timeout < 0 {
		return nil, fmt.Errorf("api timeout must not be negative, got %s", c.Timeout)
	}

	if c.MaxRetries < 0 {
		return nil, fmt.Errorf("api max retries must not be negative, got %d", c.MaxRetries)
	}

	if c.InitialBackoff < 0 {
		return nil, fmt.Errorf("api initial backoff must not be negative, got %s", c.InitialBackoff)
	}

	if c.RateLimit < 0 {
		return nil, fmt.Errorf("api rate limit must not be negative, got %v", c.RateLimit)
	}

	base.RawQuery = ""
	base.Fragment = ""

	return base, nil
}
