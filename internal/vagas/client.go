// Package vagas is the HTTP client for the résumé and job-matching backend.
// Every failed call is normalized into an *Error before it reaches the caller.
package vagas

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/spigell/vagas/internal/secrets"
	"github.com/spigell/vagas/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

// TokenEnv is the environment variable holding an optional bearer token.
const TokenEnv = "VAGAS_TOKEN"

// Waiter blocks between retry attempts.
type Waiter func(ctx context.Context, d time.Duration) error

type Client struct {
	baseURL        *url.URL
	timeout        time.Duration
	maxRetries     int
	initialBackoff time.Duration
	userAgent      string
	token          string
	limiter        *rate.Limiter

	logger     *zap.Logger
	HTTPClient *http.Client
	wait       Waiter
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its cookie jar is kept
// as provided.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.HTTPClient = h
		}
	}
}

// WithWaiter replaces the function used to wait between attempts.
func WithWaiter(w Waiter) Option {
	return func(c *Client) {
		if w != nil {
			c.wait = w
		}
	}
}

// WithToken sets the bearer token, overriding the token file and environment.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New validates cfg and builds a client. A client is never returned for an
// invalid config, so no request can be sent to a wrong or empty base URL.
func New(cfg *Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	base, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	token, err := secrets.LoadOptional(secrets.Source{
		Name: "api token",
		Env:  TokenEnv,
		File: cfg.TokenFile,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:        base,
		timeout:        cfg.Timeout,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
		userAgent:      cfg.UserAgent,
		token:          token,
		logger:         logger,
		HTTPClient:     &http.Client{Jar: jar},
		wait:           utils.WaitFor,
	}

	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}

	if c.initialBackoff == 0 {
		c.initialBackoff = DefaultInitialBackoff
	}

	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}
