package services

import (
	"context"
	"errors"
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/insight"
	"pocketledger/internal/models"
)

// insightService runs insight requests through the shared tracker.
type insightService struct {
	analysis  AnalysisServicer
	requester *insight.Requester
	tracker   *insight.Tracker
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(analysis AnalysisServicer, requester *insight.Requester, tracker *insight.Tracker) InsightServicer {
	return &insightService{
		analysis:  analysis,
		requester: requester,
		tracker:   tracker,
	}
}

// RequestInsight reviews the transactions inside the window. Only one
// request runs at a time; a second caller gets ErrInsightInFlight. Failures
// of the external call are reported through the snapshot, not as errors.
func (s *insightService) RequestInsight(ctx context.Context, filter models.FilterState, now time.Time) (insight.Snapshot, error) {
	if !filter.Range.Valid() {
		return insight.Snapshot{}, apperrors.ErrInvalidTimeRange
	}

	label := filter.ContextLabel()
	if err := s.tracker.Begin(label); err != nil {
		if errors.Is(err, insight.ErrInFlight) {
			return s.snapshot(), apperrors.ErrInsightInFlight
		}
		return insight.Snapshot{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	filtered := s.analysis.FilteredTransactions(filter, now)
	s.tracker.Complete(s.requester.Do(ctx, filtered, label))
	return s.snapshot(), nil
}

// Status returns the state of the latest request.
func (s *insightService) Status() insight.Snapshot {
	return s.snapshot()
}

// ResetInsight clears the latest result. A running request cannot be
// cleared and yields ErrInsightInFlight.
func (s *insightService) ResetInsight() (insight.Snapshot, error) {
	if err := s.tracker.Reset(); err != nil {
		return s.snapshot(), apperrors.ErrInsightInFlight
	}
	return s.snapshot(), nil
}

func (s *insightService) snapshot() insight.Snapshot {
	snap := s.tracker.Snapshot()
	snap.Configured = s.requester.Configured()
	return snap
}
