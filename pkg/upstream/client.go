// Package upstream is the shared HTTP client for third-party APIs. Every
// call goes through a per-upstream circuit breaker and is counted in metrics.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"smartcrop/pkg/logging"
	"smartcrop/pkg/metrics"
)

const maxBody = 4 << 20

// StatusError is a non-2xx reply.
type StatusError struct {
	Upstream string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Upstream, e.Code)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

type Client struct {
	name    string
	httpc   *http.Client
	cb      *gobreaker.CircuitBreaker[[]byte]
	headers map[string]string
}

type Options struct {
	Timeout          time.Duration
	FailureThreshold uint32
	OpenFor          time.Duration
	Headers          map[string]string
	Transport        http.RoundTripper
}

func New(name string, opt Options) *Client {
	if opt.Timeout <= 0 {
		opt.Timeout = 10 * time.Second
	}
	if opt.FailureThreshold == 0 {
		opt.FailureThreshold = 5
	}
	if opt.OpenFor <= 0 {
		opt.OpenFor = 30 * time.Second
	}
	threshold := opt.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     opt.OpenFor,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		// 4xx means the request was bad, not that the upstream is down
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return se.Code < 500
			}
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[upstream] breaker state change")
			metrics.RecordBreakerState(name, to)
		},
	})
	metrics.RecordBreakerState(name, gobreaker.StateClosed)
	return &Client{
		name:    name,
		httpc:   &http.Client{Timeout: opt.Timeout, Transport: opt.Transport},
		cb:      cb,
		headers: opt.Headers,
	}
}

func (c *Client) Name() string { return c.name }

// State is the breaker state, "closed", "half-open" or "open".
func (c *Client) State() string { return c.cb.State().String() }

// Get fetches base with query q and returns the body of a 2xx reply.
func (c *Client) Get(ctx context.Context, base string, q url.Values, headers map[string]string) ([]byte, error) {
	u := base
	if len(q) > 0 {
		sep := "?"
		if strings.Contains(base, "?") {
			sep = "&"
		}
		u += sep + q.Encode()
	}
	body, err := c.cb.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &StatusError{Upstream: c.name, Code: resp.StatusCode}
		}
		return b, nil
	})
	metrics.RecordUpstream(c.name, err)
	if err != nil {
		logging.Debug().Err(err).Str("upstream", c.name).Msg("[upstream] request failed")
		var se *StatusError
		if errors.As(err, &se) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	return body, nil
}

// GetJSON is Get followed by a JSON decode into out.
func (c *Client) GetJSON(ctx context.Context, base string, q url.Values, headers map[string]string, out any) error {
	b, err := c.Get(ctx, base, q, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%s: decode: %w", c.name, err)
	}
	return nil
}
