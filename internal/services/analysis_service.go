package services

import (
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// analysisService computes windowed summaries over the store.
type analysisService struct {
	store *store.Store
}

// NewAnalysisService creates a new AnalysisServicer.
func NewAnalysisService(s *store.Store) AnalysisServicer {
	return &analysisService{store: s}
}

// FilteredTransactions returns the stored transactions inside the window.
func (s *analysisService) FilteredTransactions(filter models.FilterState, now time.Time) []models.Transaction {
	return FilterTransactions(s.store.List(), filter, now)
}

// Analyze filters the stored transactions and aggregates the result.
func (s *analysisService) Analyze(filter models.FilterState, now time.Time) (*Analysis, error) {
	if !filter.Range.Valid() {
		return nil, apperrors.ErrInvalidTimeRange
	}

	filtered := s.FilteredTransactions(filter, now)
	return &Analysis{
		Filter:           filter,
		Context:          filter.ContextLabel(),
		TransactionCount: len(filtered),
		Summary:          Aggregate(filtered),
	}, nil
}
