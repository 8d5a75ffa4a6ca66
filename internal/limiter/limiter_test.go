package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withClock(l *Limiter, now *time.Time) *Limiter {
	l.now = func() time.Time { return *now }
	return l
}

func TestUserCooldown(t *testing.T) {
	now := time.Unix(0, 0)
	l := withClock(New(3*time.Second, 0), &now)

	assert.True(t, l.Allow("ann"))
	assert.False(t, l.Allow("ann"))
	assert.True(t, l.Allow("bob"), "cooldown is per user")

	now = now.Add(3 * time.Second)
	assert.True(t, l.Allow("ann"))
}

func TestGlobalPerMinuteCap(t *testing.T) {
	now := time.Unix(0, 0)
	l := withClock(New(0, 2), &now)

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
	assert.False(t, l.Allow("c"))

	now = now.Add(61 * time.Second)
	assert.True(t, l.Allow("c"))
}

func TestDeniedRequestsDoNotCount(t *testing.T) {
	now := time.Unix(0, 0)
	l := withClock(New(time.Second, 2), &now)

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "the denied request did not use up the cap")
}

func TestDisabledAndNil(t *testing.T) {
	l := New(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("spam"))
	}

	var none *Limiter
	assert.True(t, none.Allow("anyone"))
}

func TestPruneKeepsActiveUsers(t *testing.T) {
	now := time.Unix(0, 0)
	l := withClock(New(time.Second, 0), &now)
	for i := 0; i < 1100; i++ {
		l.lastByUser[string(rune('a'+i%26))+time.Duration(i).String()] = now.Add(-time.Hour)
	}
	assert.True(t, l.Allow("fresh"))
	assert.Contains(t, l.lastByUser, "fresh")
	assert.Less(t, len(l.lastByUser), 1100)
}
