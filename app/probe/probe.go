// Package probe checks that the application under test is serving before a browser is launched.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
)

// defaults for probe configuration
const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "zenshot"
)

// Probe makes a single reachability request to the target.
type Probe struct {
	requester *requester.Requester
}

// StatusError is returned when the target responds with a server error.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded with HTTP %d", e.URL, e.StatusCode)
}

// probeConfig holds configuration options during probe construction.
type probeConfig struct {
	timeout   time.Duration
	userAgent string
}

// Option is a functional option for configuring the probe.
type Option func(*probeConfig)

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *probeConfig) {
		cfg.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cfg *probeConfig) {
		cfg.userAgent = ua
	}
}

// New makes a Probe. Requests are never retried.
func New(opts ...Option) *Probe {
	cfg := &probeConfig{timeout: defaultTimeout, userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Probe{
		requester: requester.New(http.Client{Timeout: cfg.timeout}, middleware.Header("User-Agent", cfg.userAgent)),
	}
}

// Check requests target once. Transport errors and 5xx responses fail, anything else means the app is serving.
func (p *Probe) Check(ctx context.Context, target string) error {
	if target == "" {
		return errors.New("target URL is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.requester.Do(req)
	if err != nil {
		return fmt.Errorf("%s is not reachable: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{URL: target, StatusCode: resp.StatusCode}
	}
	return nil
}
