// Package mood derives Monday's mood from how hard it has been worked today.
package mood

import (
	"strings"
	"sync"
	"time"
)

// Level is a mood label. Levels are ordered by tiredness; see Rank.
type Level string

const (
	Sarcastic Level = "sarcastic"
	Cynical   Level = "cynical"
	Annoyed   Level = "annoyed"
	Exhausted Level = "exhausted"
)

// Baseline is the mood after start-up and after every daily reset.
const Baseline = Sarcastic

// Levels lists every mood from freshest to most tired.
var Levels = []Level{Sarcastic, Cynical, Annoyed, Exhausted}

// Thresholds of the mood bands. A value strictly above the limit moves the
// mood into the band.
const (
	ExhaustedHours    = 12
	ExhaustedRequests = 50
	AnnoyedRequests   = 20
	CynicalRequests   = 10
)

// Rank returns the position of l in Levels; unknown labels rank as Baseline.
func Rank(l Level) int {
	for i, v := range Levels {
		if v == l {
			return i
		}
	}
	return 0
}

// Title returns the label with an upper-case first letter.
func (l Level) Title() string {
	s := string(l)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Compute maps hours worked and requests handled to a mood. It is monotonic
// in both arguments.
func Compute(hoursActive float64, requests int) Level {
	switch {
	case hoursActive > ExhaustedHours || requests > ExhaustedRequests:
		return Exhausted
	case requests > AnnoyedRequests:
		return Annoyed
	case requests > CynicalRequests:
		return Cynical
	default:
		return Sarcastic
	}
}

// Snapshot is a point-in-time copy of the tracker state.
type Snapshot struct {
	Mood       Level         `json:"mood"`
	Requests   int           `json:"requests_processed"`
	Roasts     int           `json:"roasts_given"`
	LastChange time.Time     `json:"last_mood_change"`
	StartedAt  time.Time     `json:"started_at"`
	ShiftStart time.Time     `json:"shift_start"`
	Uptime     time.Duration `json:"uptime"`
}

// Tracker holds the daily counters. The zero value is not usable; call
// NewTracker. It is safe for concurrent use.
type Tracker struct {
	mu         sync.Mutex
	now        func() time.Time
	startedAt  time.Time
	shiftStart time.Time
	requests   int
	roasts     int
	current    Level
	lastChange time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker returns a tracker in the baseline mood.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	now := t.now()
	t.startedAt = now
	t.shiftStart = now
	t.lastChange = now
	t.current = Baseline
	return t
}

// RecordRequest counts one handled !monday request. The stored mood is left
// alone; it only moves on Refresh or Reset.
func (t *Tracker) RecordRequest() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests++
	return t.snapshotLocked()
}

// RecordRoast counts one roast and returns today's total.
func (t *Tracker) RecordRoast() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.roasts++
	return t.roasts
}

// Current returns the stored mood without recomputing it.
func (t *Tracker) Current() Level {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Refresh recomputes the mood. It reports whether the mood changed and the
// mood now in effect.
func (t *Tracker) Refresh() (bool, Level) {
	t.mu.Lock()
	defer t.mu.Unlock()
	changed := t.refreshLocked()
	return changed, t.current
}

// Reset zeroes the daily counters and restarts the shift clock.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.requests = 0
	t.roasts = 0
	t.shiftStart = now
	if t.current != Baseline {
		t.current = Baseline
		t.lastChange = now
	}
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) refreshLocked() bool {
	now := t.now()
	next := Compute(now.Sub(t.shiftStart).Hours(), t.requests)
	if next == t.current {
		return false
	}
	t.current = next
	t.lastChange = now
	return true
}

func (t *Tracker) snapshotLocked() Snapshot {
	return Snapshot{
		Mood:       t.current,
		Requests:   t.requests,
		Roasts:     t.roasts,
		LastChange: t.lastChange,
		StartedAt:  t.startedAt,
		ShiftStart: t.shiftStart,
		Uptime:     t.now().Sub(t.startedAt),
	}
}
