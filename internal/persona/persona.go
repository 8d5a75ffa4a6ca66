// Package persona holds Monday's canned lines and renders them.
package persona

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/keshon/monday-bot/internal/mood"
)

// ErrUnresolved is returned by Render when a placeholder has no value.
var ErrUnresolved = errors.New("unresolved placeholder")

var placeholder = regexp.MustCompile(`\{([A-Za-z_]+)\}`)

// Render replaces every {name} in tmpl with vars[name]. It fails if any
// placeholder is left without a value.
func Render(tmpl string, vars map[string]string) (string, error) {
	var missing []string
	out := placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := vars[key]
		if !ok {
			missing = append(missing, key)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnresolved, strings.Join(missing, ", "))
	}
	return out, nil
}

// Source is the random source used to pick lines. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Persona picks and renders Monday's lines. It is safe for concurrent use.
type Persona struct {
	mu  sync.Mutex
	src Source
}

// New returns a Persona using src, or a time-seeded source when src is nil.
func New(src Source) *Persona {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Persona{src: src}
}

func (p *Persona) pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return list[p.src.Intn(len(list))]
}

// UserTurn builds the user message sent with the system prompt.
func (p *Persona) UserTurn(level mood.Level, requests int, user, message string) string {
	// user and message are substituted in a single pass, so braces typed by
	// the user are never re-expanded.
	return mustRender(userTurn, map[string]string{
		"mood":     string(level),
		"requests": strconv.Itoa(requests),
		"user":     user,
		"message":  message,
	})
}

// mustRender is for the static tables, whose placeholders are covered by tests.
func mustRender(tmpl string, vars map[string]string) string {
	s, err := Render(tmpl, vars)
	if err != nil {
		panic(err)
	}
	return s
}

// Roast returns a roast aimed at user, with commentary once the daily roast
// count gets high.
func (p *Persona) Roast(user string, roastsToday int) string {
	line := mustRender(p.pick(roasts), map[string]string{"user": user})

	var comment string
	switch {
	case roastsToday > roastsTired:
		comment = " I'm getting tired of roasting people today."
	case roastsToday > roastsEntertaining:
		comment = " At least this is entertaining."
	}
	return line + comment + Sign
}

// Motivation returns a sarcastic motivational line.
func (p *Persona) Motivation() string {
	return p.pick(motivations) + Sign
}

// Status renders a random status line from s.
func (p *Persona) Status(s mood.Snapshot) (string, error) {
	line, err := Render(p.pick(statuses), statusVars(s))
	if err != nil {
		return "", err
	}
	return line + Sign, nil
}

func statusVars(s mood.Snapshot) map[string]string {
	return map[string]string{
		"hours":    strconv.Itoa(int(s.Uptime.Hours())),
		"minutes":  strconv.Itoa(int(s.Uptime.Minutes()) % 60),
		"requests": strconv.Itoa(s.Requests),
		"roasts":   strconv.Itoa(s.Roasts),
		"mood":     string(s.Mood),
		"Mood":     s.Mood.Title(),
	}
}

// Mood describes the given mood.
func (p *Persona) Mood(level mood.Level) string {
	desc, ok := moodDescriptions[level]
	if !ok {
		desc = unknownMood
	}
	return fmt.Sprintf("Current mood: %s. %s%s", level.Title(), desc, Sign)
}

// MoodResponse returns a canned complaint matching level. Unknown levels use
// the baseline table.
func (p *Persona) MoodResponse(level mood.Level) string {
	list, ok := moodResponses[level]
	if !ok {
		list = moodResponses[mood.Baseline]
	}
	return p.pick(list)
}

// Signature returns a sign-off matching level.
func (p *Persona) Signature(level mood.Level) string {
	list, ok := signatures[level]
	if !ok {
		return Sign
	}
	return p.pick(list)
}

// Broken is the reply used when a completion fails.
func (p *Persona) Broken(level mood.Level) string {
	return p.MoodResponse(level) + brokenSuffix
}

// CommandError is the reply used when a command returns an error.
func (p *Persona) CommandError(level mood.Level, err error) string {
	return fmt.Sprintf("%s Error: %v%s", p.MoodResponse(level), err, Sign)
}

// SlowDown is the reply used when a user is rate limited.
func (p *Persona) SlowDown() string {
	return p.pick(slowDowns) + Sign
}
