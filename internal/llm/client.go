// Package llm provides the language-model gateway: one generate operation
// backed by an ordered pair of interchangeable providers with transparent
// fallback.
package llm

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/time/rate"
)

// Generator is the call surface the rest of the orchestrator depends on.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Client tries each configured provider in order for every call. Provider
// choice is local to the call, never sticky across a conversation.
type Client struct {
	providers   []Provider
	retryConfig RetryConfig
	limiter     *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithRetryConfig sets the per-provider retry configuration.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(c *Client) { c.retryConfig = cfg }
}

// WithRateLimit caps outbound provider requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// NewClient creates a gateway over the given providers in priority order.
func NewClient(providers []Provider, opts ...Option) *Client {
	c := &Client{
		providers:   providers,
		retryConfig: DefaultRetryConfig(),
		limiter:     rate.NewLimiter(rate.Limit(5), 5),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate sends the request to the primary provider, falling back through
// the remaining providers on any failure. When every provider fails the
// returned error wraps ErrUnavailable.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("at least one message is required")
	}
	if len(c.providers) == 0 {
		return "", fmt.Errorf("no providers configured: %w", ErrUnavailable)
	}

	var lastErr error
	for _, p := range c.providers {
		text, err := c.tryProvider(ctx, p, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		log.Printf("WARN: provider %s failed, trying next: %v", p.Name(), err)
	}

	return "", fmt.Errorf("all providers failed: %v: %w", lastErr, ErrUnavailable)
}

// tryProvider attempts one provider, retrying transient failures.
func (c *Client) tryProvider(ctx context.Context, p Provider, req Request) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retryConfig.MaxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		text, err := p.Generate(ctx, req)
		if err == nil {
			if text == "" {
				// An empty completion is as useless as a failed one.
				lastErr = fmt.Errorf("provider %s returned empty response", p.Name())
				continue
			}
			return text, nil
		}

		lastErr = err
		if !IsTransient(err) {
			return "", err
		}
		if attempt < c.retryConfig.MaxAttempts {
			backoff := c.backoff(attempt)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return "", lastErr
}

// backoff computes exponential backoff with jitter for the given attempt.
func (c *Client) backoff(attempt int) time.Duration {
	multiplier := 1.0
	for i := 1; i < attempt; i++ {
		multiplier *= c.retryConfig.BackoffMultiplier
	}
	backoff := time.Duration(float64(c.retryConfig.BackoffBase) * multiplier)
	if backoff > c.retryConfig.MaxBackoff {
		backoff = c.retryConfig.MaxBackoff
	}
	jitter := float64(backoff) * 0.25 * (rand.Float64()*2 - 1)
	return backoff + time.Duration(jitter)
}
