package graph

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ErrQuotaExhausted is returned when the call quota for the current window
// has been used up.
var ErrQuotaExhausted = errors.New("graph API call quota exhausted")

const defaultQuotaWindow = time.Hour

// RateLimiter controls Graph API call rate and windowed call quota.
// It uses a token bucket for per-second rate limiting and a rolling window
// (one hour by default, matching Graph app-level limits) for quota tracking.
type RateLimiter struct {
	limiter  *rate.Limiter
	count    atomic.Int64
	maxCalls int64
	window   time.Duration
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// WithQuotaWindow overrides the length of the quota window.
func WithQuotaWindow(d time.Duration) RateLimiterOption {
	return func(r *RateLimiter) {
		r.window = d
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size, and per-window call quota. The window starts when the limiter
// is created and restarts once it has elapsed.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxCalls int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxCalls: maxCalls,
		window:   defaultQuotaWindow,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(r.window)
	return r
}

// Wait blocks until the rate limiter allows the call, or the context is canceled.
// Returns ErrQuotaExhausted if the window quota has been used up.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.checkReset()

	if r.count.Load() >= r.maxCalls {
		return fmt.Errorf("%w (%d/%d)", ErrQuotaExhausted, r.count.Load(), r.maxCalls)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	r.count.Add(1)
	return nil
}

// MaxCalls returns the configured per-window call quota.
func (r *RateLimiter) MaxCalls() int64 {
	return r.maxCalls
}

// Count returns the number of calls made in the current window.
func (r *RateLimiter) Count() int64 {
	return r.count.Load()
}

// Remaining returns the number of calls left in the current window.
func (r *RateLimiter) Remaining() int64 {
	return max(r.maxCalls-r.count.Load(), 0)
}

// ResetAt returns the time the current window ends.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}

func (r *RateLimiter) checkReset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.count.Store(0)
		r.resetAt = now.Add(r.window)
	}
}
