// Package app holds the process-wide state shared by the HTTP handlers.
package app

import (
	"sync"
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/insight"
	"pocketledger/internal/models"
)

// State is the single owner of the analysis filter and the insight tracker.
// It is created once at startup and passed to the handlers that need it.
type State struct {
	mu      sync.RWMutex
	filter  models.FilterState
	tracker *insight.Tracker
	now     func() time.Time
}

// NewState returns a state with the default filter for today. A nil clock
// means the wall clock.
func NewState(now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	return &State{
		filter:  models.DefaultFilterState(models.DateOf(now())),
		tracker: insight.NewTracker(now),
		now:     now,
	}
}

// Now returns the current instant.
func (s *State) Now() time.Time {
	return s.now()
}

// Today returns the current calendar date.
func (s *State) Today() models.Date {
	return models.DateOf(s.now())
}

// Filter returns the current analysis filter.
func (s *State) Filter() models.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetFilter replaces the analysis filter. Zero custom bounds keep the
// previous ones so switching back to custom restores the last window.
func (s *State) SetFilter(next models.FilterState) (models.FilterState, error) {
	if !next.Range.Valid() {
		return models.FilterState{}, apperrors.ErrInvalidTimeRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if next.CustomStart.IsZero() {
		next.CustomStart = s.filter.CustomStart
	}
	if next.CustomEnd.IsZero() {
		next.CustomEnd = s.filter.CustomEnd
	}
	s.filter = next
	return s.filter, nil
}

// Insight returns the tracker for the latest insight request.
func (s *State) Insight() *insight.Tracker {
	return s.tracker
}
