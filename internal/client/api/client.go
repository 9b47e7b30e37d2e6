package api

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

	"github.com/dmitrijs2005/folio/internal/logging"
	"github.com/felixgeelhaar/fortify/retry"
)

const maxErrorBody = 4 << 10

type Client struct {
	baseURL *url.URL
	http    *http.Client
	retrier retry.Retry[[]byte]
	logger  logging.Logger

	timeout       time.Duration
	retryAttempts int
	retryDelay    time.Duration
	base          http.RoundTripper
}

type Option func(*Client)

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetry sets how many times a GET is attempted and the first backoff
// delay. attempts <= 1 disables retrying.
func WithRetry(attempts int, initialDelay time.Duration) Option {
	return func(c *Client) {
		c.retryAttempts = attempts
		c.retryDelay = initialDelay
	}
}

// WithTransport replaces the round tripper the bearer transport wraps.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.base = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a client for the API rooted at baseURL. Requests carry the
// token currently held by tokens.
func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse api base url: unsupported scheme %q", u.Scheme)
	}

	c := &Client{
		baseURL:       u,
		timeout:       10 * time.Second,
		retryAttempts: 3,
		retryDelay:    200 * time.Millisecond,
		base:          http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}

	c.http = &http.Client{
		Timeout:   c.timeout,
		Transport: &bearerTransport{base: c.base, tokens: tokens},
	}

	if c.retryAttempts > 1 {
		c.retrier = retry.New[[]byte](retry.Config{
			MaxAttempts:   c.retryAttempts,
			InitialDelay:  c.retryDelay,
			MaxDelay:      5 * time.Second,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
			Jitter:        true,
			IsRetryable:   isRetryable,
		})
	}
	return c, nil
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(elem ...string) string {
	return c.baseURL.JoinPath(elem...).String()
}

// get fetches path and decodes the JSON body into out, retrying
// transient failures.
func (c *Client) get(ctx context.Context, out any, elem ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	endpoint := c.endpoint(elem...)
	fetch := func(ctx context.Context) ([]byte, error) {
		return c.send(ctx, http.MethodGet, endpoint, nil)
	}

	var (
		body []byte
		err  error
	)
	if c.retrier == nil {
		body, err = fetch(ctx)
	} else {
		var last error
		body, err = c.retrier.Do(ctx, func(ctx context.Context) ([]byte, error) {
			b, err := fetch(ctx)
			if err != nil {
				c.logger.Debug(ctx, "api request failed", "method", http.MethodGet, "url", endpoint, "error", err)
			}
			last = err
			return b, err
		})
		switch {
		case err == nil:
		case ctx.Err() != nil:
			err = ctx.Err()
		case last != nil:
			err = last
		}
	}
	if err != nil {
		return err
	}
	return decode(body, out)
}

// write sends in as the JSON body and decodes the response into out when
// both out and the body are non-empty. Writes are not retried.
func (c *Client) write(ctx context.Context, method string, in, out any, elem ...string) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	body, err := c.send(ctx, method, c.endpoint(elem...), payload)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return decode(body, out)
}

func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		serr := statusError(resp.StatusCode, b)
		c.logger.Debug(ctx, "api error response", "method", method, "url", endpoint, "status", resp.StatusCode)
		return nil, serr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	return body, nil
}

func decode(body []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsUnavailable reports whether err means the API could not be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
