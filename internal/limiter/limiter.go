// Package limiter decides whether a user may trigger another completion.
package limiter

import (
	"sync"
	"time"
)

// Limiter enforces a per-user cooldown and a global per-minute cap on
// completion requests. A zero cooldown or cap disables that rule.
type Limiter struct {
	mu           sync.Mutex
	cooldown     time.Duration
	maxPerMinute int
	recent       []time.Time
	lastByUser   map[string]time.Time
	now          func() time.Time
}

// New returns a limiter.
func New(cooldown time.Duration, maxPerMinute int) *Limiter {
	return &Limiter{
		cooldown:     cooldown,
		maxPerMinute: maxPerMinute,
		recent:       make([]time.Time, 0, 32),
		lastByUser:   make(map[string]time.Time),
		now:          time.Now,
	}
}

// Allow reports whether userID may make a request now, and records it if so.
func (l *Limiter) Allow(userID string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if l.cooldown > 0 {
		if last, ok := l.lastByUser[userID]; ok && now.Sub(last) < l.cooldown {
			return false
		}
	}

	if l.maxPerMinute > 0 {
		cut := now.Add(-time.Minute)
		kept := l.recent[:0]
		for _, t := range l.recent {
			if t.After(cut) {
				kept = append(kept, t)
			}
		}
		l.recent = kept
		if len(l.recent) >= l.maxPerMinute {
			return false
		}
		l.recent = append(l.recent, now)
	}

	l.lastByUser[userID] = now
	l.pruneLocked(now)
	return true
}

// pruneLocked forgets users whose cooldown is long over.
func (l *Limiter) pruneLocked(now time.Time) {
	if len(l.lastByUser) < 1024 {
		return
	}
	for id, last := range l.lastByUser {
		if now.Sub(last) >= l.cooldown {
			delete(l.lastByUser, id)
		}
	}
}
