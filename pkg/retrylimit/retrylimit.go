// Package retrylimit provides an adaptive rate limiter for outbound API
// clients. The allowed rate shrinks when the remote side reports overload
// (HTTP 429 or 5xx) and grows back after a quiet period of successes.
//
// Calls are delayed, never repeated: Do runs fn exactly once.
//
// Example usage:
//
//	lim := retrylimit.NewAdaptiveLimiter(2, 1, 5, 1, 0.5)
//	err := retrylimit.Do(ctx, lim, func() error {
//	    return callCompletionAPI(ctx)
//	})
package retrylimit

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// quietPeriod is how long after the last overload error successes are
// allowed to raise the rate again.
const quietPeriod = 10 * time.Second

// AdaptiveLimiter manages a rate limit that adjusts automatically based
// on the outcome of requests. Thread-safe.
type AdaptiveLimiter struct {
	mu        sync.RWMutex
	limiter   *rate.Limiter
	minLimit  rate.Limit
	maxLimit  rate.Limit
	stepUp    rate.Limit
	stepDown  float64
	lastError time.Time
	now       func() time.Time
}

// NewAdaptiveLimiter creates an AdaptiveLimiter with the given configuration.
//
// Parameters:
//   - initial: starting requests per second
//   - min: minimum allowed rate
//   - max: maximum allowed rate
//   - stepUp: increment on success
//   - stepDown: multiplier applied on overload (e.g., 0.5 to halve)
func NewAdaptiveLimiter(initial, min, max rate.Limit, stepUp rate.Limit, stepDown float64) *AdaptiveLimiter {
	if min <= 0 {
		min = 0.1
	}
	if initial < min {
		initial = min
	}
	if max < initial {
		max = initial
	}
	return &AdaptiveLimiter{
		limiter:  rate.NewLimiter(initial, burstFor(initial)),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
		now:      time.Now,
	}
}

// Wait blocks until a token is available or the context is canceled.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return a.limiter.Wait(ctx)
}

// Success increases the rate after a successful request, unless an overload
// error was seen recently.
func (a *AdaptiveLimiter) Success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.now().Sub(a.lastError) > quietPeriod {
		a.adjustLimit(a.limiter.Limit() + a.stepUp)
	}
}

// RateLimited reduces the rate after a response indicating overload.
func (a *AdaptiveLimiter) RateLimited() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = a.now()
	a.adjustLimit(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

// CurrentLimit returns the current requests per second.
func (a *AdaptiveLimiter) CurrentLimit() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return float64(a.limiter.Limit())
}

// CurrentBurst returns the current burst size.
func (a *AdaptiveLimiter) CurrentBurst() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.limiter.Burst()
}

// MaxLimit returns the configured maximum rate.
func (a *AdaptiveLimiter) MaxLimit() rate.Limit { return a.maxLimit }

// MinLimit returns the configured minimum rate.
func (a *AdaptiveLimiter) MinLimit() rate.Limit { return a.minLimit }

func (a *AdaptiveLimiter) adjustLimit(newLimit rate.Limit) {
	if newLimit > a.maxLimit {
		newLimit = a.maxLimit
	} else if newLimit < a.minLimit {
		newLimit = a.minLimit
	}

	if newLimit != a.limiter.Limit() {
		a.limiter.SetLimit(newLimit)
		a.limiter.SetBurst(burstFor(newLimit))
	}
}

func burstFor(l rate.Limit) int {
	if l < 1 {
		return 1
	}
	return int(l)
}

// HTTPError is implemented by errors that carry an HTTP status code.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError is a plain HTTPError for clients that only know the code.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string   { return e.Err.Error() }
func (e *StatusError) Unwrap() error   { return e.Err }
func (e *StatusError) StatusCode() int { return e.Code }

// IsOverload reports whether err signals that the remote side wants us to
// slow down: 429 or any 5xx anywhere in the error chain.
func IsOverload(err error) bool {
	return IsRateLimit(err) || IsServerError(err)
}

// IsRateLimit reports whether err carries HTTP 429.
func IsRateLimit(err error) bool {
	code, ok := statusCode(err)
	return ok && code == http.StatusTooManyRequests
}

// IsServerError reports whether err carries a 5xx status.
func IsServerError(err error) bool {
	code, ok := statusCode(err)
	return ok && code >= 500 && code < 600
}

func statusCode(err error) (int, bool) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode(), true
	}
	return 0, false
}

// Do waits for the limiter, runs fn once and feeds the outcome back into the
// limiter. A nil limiter just runs fn.
func Do(ctx context.Context, lim *AdaptiveLimiter, fn func() error) error {
	if lim == nil {
		return fn()
	}
	if err := lim.Wait(ctx); err != nil {
		return err
	}

	err := fn()
	switch {
	case err == nil:
		lim.Success()
	case IsOverload(err):
		lim.RateLimited()
	}
	return err
}
