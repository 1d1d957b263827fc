// Package source wraps retailer source adapters with cross-cutting call
// policies. The comparison core never sees these: an adapter comes out of
// this package still looking like a plain SourceAdapter.
package source

import (
	"context"
	"log"
	"time"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// RetryPolicy describes how failed adapter calls are retried.
type RetryPolicy struct {
	MaxAttempts    int           // total attempts, including the first
	InitialBackoff time.Duration // doubles after every failed attempt
}

// DefaultRetryPolicy matches the scraping defaults: three attempts with
// exponential backoff starting at half a second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: 500 * time.Millisecond,
	}
}

// Backoff returns the delay before the given retry. Attempt 1 is the first
// retry: 1 → InitialBackoff, 2 → 2×, 3 → 4×, and so on.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.InitialBackoff << (attempt - 1)
}

// retryingAdapter decorates a SourceAdapter with a retry policy.
type retryingAdapter struct {
	inner  domain.SourceAdapter
	policy RetryPolicy
	name   string
}

// WithRetry wraps an adapter so every call is attempted up to
// policy.MaxAttempts times with exponential backoff between attempts.
// Context cancellation cuts retries short.
func WithRetry(name string, inner domain.SourceAdapter, policy RetryPolicy) domain.SourceAdapter {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.InitialBackoff <= 0 {
		policy.InitialBackoff = 500 * time.Millisecond
	}
	return &retryingAdapter{inner: inner, policy: policy, name: name}
}

func (a *retryingAdapter) Search(ctx context.Context, query string) ([]domain.ProductOffer, error) {
	var lastErr error

	for attempt := 1; attempt <= a.policy.MaxAttempts; attempt++ {
		offers, err := a.inner.Search(ctx, query)
		if err == nil {
			return offers, nil
		}
		lastErr = err
		log.Printf("[SOURCE] %s: attempt %d/%d failed: %v", a.name, attempt, a.policy.MaxAttempts, err)

		if attempt == a.policy.MaxAttempts {
			break
		}
		if err := a.sleep(ctx, a.policy.Backoff(attempt)); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func (a *retryingAdapter) GetDetails(ctx context.Context, url string) (*domain.ProductOffer, error) {
	var lastErr error

	for attempt := 1; attempt <= a.policy.MaxAttempts; attempt++ {
		offer, err := a.inner.GetDetails(ctx, url)
		if err == nil {
			return offer, nil
		}
		lastErr = err

		if attempt == a.policy.MaxAttempts {
			break
		}
		if err := a.sleep(ctx, a.policy.Backoff(attempt)); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func (a *retryingAdapter) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
