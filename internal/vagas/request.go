package vagas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/spigell/vagas/internal/logger"
	"github.com/spigell/vagas/internal/metrics"
	"go.uber.org/zap"
)

const (
	contentType     = "application/json"
	requestIDHeader = "X-Request-ID"
)

// call describes one logical API operation. It may be sent several times.
type call struct {
	operation string
	method    string
	path      []string
	query     url.Values
	body      any
	// list marks responses that may come as a bare array or wrapped in an envelope.
	list bool
}

// do sends the call, retrying failed attempts on the backoff schedule, and
// decodes a successful response into out (nil discards the body).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	requestID := uuid.NewString()
	log := logger.WithRequest(c.logger, cl.operation, requestID)
	started := time.Now()

	err := c.send(ctx, cl, requestID, log, out)

	category := metrics.CategoryOK
	if err != nil {
		category = string(CategoryOf(err))
		log.Debug("api call failed", zap.String("category", category), zap.Error(errors.Unwrap(err)))
	}
	metrics.APIRequests.WithLabelValues(cl.operation, category).Inc()
	metrics.APIDuration.WithLabelValues(cl.operation).Observe(time.Since(started).Seconds())

	return err
}

func (c *Client) send(ctx context.Context, cl call, requestID string, log *zap.Logger, out any) error {
	var payload []byte
	if cl.body != nil {
		var err error
		payload, err = json.Marshal(cl.body)
		if err != nil {
			return unexpectedError(fmt.Errorf("encode request body: %w", err))
		}
	}

	target := c.endpoint(cl.path, cl.query)
	backoff := c.backoff()

	for attempt := 1; ; attempt++ {
		log.Debug("make request",
			zap.String("method", cl.method),
			zap.String("url", target),
			zap.Int("attempt", attempt),
		)

		data, err := c.attempt(ctx, cl.method, target, payload, requestID)
		if err == nil {
			return decodeBody(data, out, cl.list)
		}

		if ctx.Err() != nil {
			return connectionError(ctx.Err())
		}

		delay, stop := backoff.Next()
		if stop {
			return err
		}

		log.Warn("request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.String("category", string(CategoryOf(err))),
			zap.Error(errors.Unwrap(err)),
		)
		metrics.APIRetries.WithLabelValues(cl.operation).Inc()

		if err := c.wait(ctx, delay); err != nil {
			return connectionError(err)
		}
	}
}

// attempt performs a single HTTP exchange under its own timeout. The body is
// read completely before the deadline is released.
func (c *Client) attempt(ctx context.Context, method, target string, payload []byte, requestID string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, connectionError(err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, unexpectedError(err)
	}

	c.setHeaders(req, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, connectionError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, connectionError(err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return data, nil
	}

	return nil, statusError(resp.StatusCode, data)
}

func (c *Client) setHeaders(req *http.Request, requestID string) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// backoff returns a fresh schedule for one logical call: initial, 2x, 4x ...
// limited to maxRetries extra attempts.
func (c *Client) backoff() retry.Backoff {
	return retry.WithMaxRetries(uint64(c.maxRetries), retry.NewExponential(c.initialBackoff))
}

func (c *Client) endpoint(segments []string, query url.Values) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}

	u := c.baseURL.JoinPath(escaped...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	return u.String()
}
