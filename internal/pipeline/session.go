package pipeline

import (
	"fmt"
	"sync"
	"time"
)

// Session tracks one run's workflow state: identifier, current stage,
// per-stage timings and accumulated errors. It is an explicit value
// owned by the caller; the toolkit itself keeps no hidden state
// between calls.
type Session struct {
	ID        string
	StartTime time.Time

	mu       sync.Mutex
	stage    string
	stagedAt time.Time
	timings  map[string]time.Duration
	errors   []string
}

// NewSession creates a session with a timestamp-derived identifier
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        fmt.Sprintf("%d", now.Unix()),
		StartTime: now,
		stage:     "setup",
		stagedAt:  now,
		timings:   make(map[string]time.Duration),
	}
}

// Advance closes the current stage, recording its duration, and opens
// the next one
func (s *Session) Advance(stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.stage != "" {
		s.timings[s.stage] += now.Sub(s.stagedAt)
	}
	s.stage = stage
	s.stagedAt = now
}

// Stage returns the current stage name
func (s *Session) Stage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// RecordError appends a non-fatal error to the session log
func (s *Session) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, err.Error())
}

// Errors returns the accumulated error messages
func (s *Session) Errors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.errors))
	copy(out, s.errors)
	return out
}

// Timings returns a copy of the per-stage durations
func (s *Session) Timings() map[string]time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]time.Duration, len(s.timings))
	for k, v := range s.timings {
		out[k] = v
	}
	return out
}

// Elapsed returns the total time since the session started
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
