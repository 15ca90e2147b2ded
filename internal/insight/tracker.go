package insight

import (
	"errors"
	"sync"
	"time"
)

// State is the lifecycle of the latest insight request.
type State string

const (
	StateIdle      State = "idle"
	StateInFlight  State = "inFlight"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// ErrInFlight is returned by Begin while a request is running.
var ErrInFlight = errors.New("insight: request already in flight")

// Snapshot is a read-only view of the tracker.
type Snapshot struct {
	State        State      `json:"state"`
	Text         string     `json:"text,omitempty"`
	ContextLabel string     `json:"context,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	// Configured is false when no API key is set; requests then reply
	// with NotConfiguredReply.
	Configured bool `json:"configured"`
}

// Tracker holds the request state machine:
//
//	idle -> inFlight -> succeeded | failed -> inFlight -> ...
//
// The text of the previous request stays visible until the next one
// finishes.
type Tracker struct {
	mu         sync.Mutex
	state      State
	text       string
	label      string
	startedAt  time.Time
	finishedAt time.Time
	now        func() time.Time
}

// NewTracker returns a tracker in the idle state.
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{state: StateIdle, now: now}
}

// Begin moves to inFlight. It fails with ErrInFlight if a request is
// already running.
func (t *Tracker) Begin(contextLabel string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateInFlight {
		return ErrInFlight
	}
	t.state = StateInFlight
	t.label = contextLabel
	t.startedAt = t.now()
	t.finishedAt = time.Time{}
	return nil
}

// Complete records the outcome of the running request. Calling it outside
// inFlight is a no-op.
func (t *Tracker) Complete(o Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateInFlight {
		return
	}
	t.text = o.Text
	t.finishedAt = t.now()
	if o.Failed() {
		t.state = StateFailed
	} else {
		t.state = StateSucceeded
	}
}

// Reset returns to idle and clears the last result. A running request is
// left alone and ErrInFlight is returned.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateInFlight {
		return ErrInFlight
	}
	t.state = StateIdle
	t.text = ""
	t.label = ""
	t.startedAt = time.Time{}
	t.finishedAt = time.Time{}
	return nil
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{State: t.state, Text: t.text, ContextLabel: t.label}
	if !t.startedAt.IsZero() {
		started := t.startedAt
		s.StartedAt = &started
	}
	if !t.finishedAt.IsZero() {
		finished := t.finishedAt
		s.FinishedAt = &finished
	}
	return s
}
