package retrylimit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassification(t *testing.T) {
	tooMany := &StatusError{Code: http.StatusTooManyRequests, Err: errors.New("slow down")}
	bad := &StatusError{Code: http.StatusBadGateway, Err: errors.New("bad gateway")}
	unauthorized := &StatusError{Code: http.StatusUnauthorized, Err: errors.New("nope")}

	assert.True(t, IsRateLimit(tooMany))
	assert.True(t, IsRateLimit(fmt.Errorf("wrapped: %w", tooMany)))
	assert.True(t, IsServerError(bad))
	assert.True(t, IsOverload(bad))
	assert.False(t, IsOverload(unauthorized))
	assert.False(t, IsOverload(errors.New("plain")))
}

func TestRateLimitedHalvesWithinBounds(t *testing.T) {
	lim := NewAdaptiveLimiter(4, 1, 8, 1, 0.5)

	lim.RateLimited()
	assert.InDelta(t, 2.0, lim.CurrentLimit(), 1e-9)
	lim.RateLimited()
	lim.RateLimited()
	assert.InDelta(t, 1.0, lim.CurrentLimit(), 1e-9)
	assert.Equal(t, 1, lim.CurrentBurst())
}

func TestSuccessRecoversAfterQuietPeriod(t *testing.T) {
	now := time.Unix(1000, 0)
	lim := NewAdaptiveLimiter(4, 1, 5, 1, 0.5)
	lim.now = func() time.Time { return now }

	lim.RateLimited()
	lim.Success()
	assert.InDelta(t, 2.0, lim.CurrentLimit(), 1e-9, "no recovery inside the quiet period")

	now = now.Add(quietPeriod + time.Second)
	lim.Success()
	lim.Success()
	lim.Success()
	lim.Success()
	assert.InDelta(t, 5.0, lim.CurrentLimit(), 1e-9, "capped at max")
}

func TestDoRunsOnceAndFeedsBack(t *testing.T) {
	lim := NewAdaptiveLimiter(4, 1, 8, 1, 0.5)
	calls := 0

	err := Do(context.Background(), lim, func() error {
		calls++
		return &StatusError{Code: http.StatusTooManyRequests, Err: errors.New("quota")}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.InDelta(t, 2.0, lim.CurrentLimit(), 1e-9)
}

func TestDoNilLimiter(t *testing.T) {
	called := false
	require.NoError(t, Do(context.Background(), nil, func() error {
		called = true
		return nil
	}))
	assert.True(t, called)
}

func TestDoHonoursCancelledContext(t *testing.T) {
	lim := NewAdaptiveLimiter(1, 1, 1, 0, 0.5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The first token is available from the burst; drain it.
	_ = lim.limiter.Allow()
	err := Do(ctx, lim, func() error { return nil })
	assert.Error(t, err)
}
