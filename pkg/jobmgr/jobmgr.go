// Package jobmgr runs named background jobs with cancellation, status
// callbacks, and in-memory tracking of running jobs.
//
// Typical usage:
//
//	jm := jobmgr.NewManager(ctx, func(msg string) {
//	    log.Println("JOB:", msg)
//	})
//
//	err := jm.StartAsync("mood-updater", jobmgr.Every(time.Hour, func(ctx context.Context) {
//	    tracker.Refresh()
//	}))
//
//	// later...
//	jm.StopAll()
//
// No retries, no workers, no persistence. Jobs run in separate goroutines
// and are removed on completion.
package jobmgr

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Job represents a running unit of work.
type Job struct {
	Name      string
	StartedAt time.Time
	Cancel    context.CancelFunc
}

// StatusReporter receives lifecycle events for jobs.
// Example messages:
//
//	running:daily-reset
//	error:daily-reset:context deadline exceeded
//	done:daily-reset
type StatusReporter func(string)

// Manager orchestrates starting, stopping and tracking jobs.
// It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	parent   context.Context
	jobs     map[string]*Job
	wg       sync.WaitGroup
	Reporter StatusReporter
}

// NewManager creates a Manager whose jobs are cancelled when parent is done.
// The reporter callback may be nil.
func NewManager(parent context.Context, reporter StatusReporter) *Manager {
	if parent == nil {
		parent = context.Background()
	}
	return &Manager{
		parent:   parent,
		jobs:     make(map[string]*Job),
		Reporter: reporter,
	}
}

// StartAsync runs a job in a separate goroutine and returns immediately.
// If a job with the same name is already running, an error is returned.
func (m *Manager) StartAsync(name string, runner func(ctx context.Context) error) error {
	m.mu.Lock()
	if _, exists := m.jobs[name]; exists {
		m.mu.Unlock()
		return fmt.Errorf("job '%s' is already running", name)
	}
	ctx, cancel := context.WithCancel(m.parent)
	job := &Job{Name: name, StartedAt: time.Now(), Cancel: cancel}
	m.jobs[name] = job
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		defer cancel()

		m.report("running:" + name)
		err := runner(ctx)
		if err != nil && ctx.Err() == nil {
			m.report("error:" + name + ":" + err.Error())
		} else {
			m.report("done:" + name)
		}

		m.mu.Lock()
		if m.jobs[name] == job {
			delete(m.jobs, name)
		}
		m.mu.Unlock()
	}()

	return nil
}

// Stop cancels a running job by name.
// If the job is not running, an error is returned.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[name]
	if !ok {
		return fmt.Errorf("job '%s' not running", name)
	}

	job.Cancel()
	delete(m.jobs, name)
	return nil
}

// StopAll cancels every running job and waits for their goroutines to exit.
func (m *Manager) StopAll() {
	m.mu.Lock()
	for name, job := range m.jobs {
		job.Cancel()
		delete(m.jobs, name)
	}
	m.mu.Unlock()
	m.wg.Wait()
}

// Wait blocks until every started job has returned.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// List returns the names of active jobs, sorted.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.jobs))
	for k := range m.jobs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Status returns a human-readable summary of active jobs.
// Example:
//
//	"Running jobs: daily-reset, mood-updater"
//
// If none are running: "No jobs are running."
func (m *Manager) Status() string {
	active := m.List()
	if len(active) == 0 {
		return "No jobs are running."
	}
	return fmt.Sprintf("Running jobs: %s", strings.Join(active, ", "))
}

func (m *Manager) report(s string) {
	if m.Reporter != nil {
		m.Reporter(s)
	}
}

// Every returns a runner that calls fn once per interval until its context
// ends. The first call happens after one interval, not immediately.
func Every(interval time.Duration, fn func(ctx context.Context)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if interval <= 0 {
			return fmt.Errorf("invalid interval %v", interval)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				fn(ctx)
			}
		}
	}
}
