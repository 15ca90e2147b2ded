package store

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"go.uber.org/zap"

	"pocketledger/internal/logger"
	"pocketledger/internal/models"
)

// TransactionsKey is the backend key holding the serialized transaction list.
const TransactionsKey = "transactions"

// Store holds the session's transaction list. Every mutation re-sorts the
// list and immediately persists it; persistence is best-effort and a failed
// write never rolls back the in-memory change.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	items   []models.Transaction
	log     *zap.SugaredLogger
}

// New creates an empty Store. Call Load to populate it from the backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		log:     logger.Named("store"),
	}
}

// Load replaces the in-memory list with the persisted one and returns a
// sorted copy. It never fails: a missing or unreadable snapshot yields an
// empty list.
func (s *Store) Load(ctx context.Context) []models.Transaction {
	items := s.read(ctx)
	slices.SortFunc(items, models.CompareTransactions)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	return slices.Clone(items)
}

func (s *Store) read(ctx context.Context) []models.Transaction {
	data, err := s.backend.Get(ctx, TransactionsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Errorw("failed to read transactions", "error", err)
		}
		return []models.Transaction{}
	}

	var items []models.Transaction
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Errorw("discarding unreadable transaction snapshot", "error", err, "bytes", len(data))
		return []models.Transaction{}
	}
	if items == nil {
		items = []models.Transaction{}
	}
	return items
}

// Save serializes list in display order and writes it to the backend. A
// failure is logged and returned; the in-memory list is left untouched.
func (s *Store) Save(ctx context.Context, list []models.Transaction) error {
	sorted := slices.Clone(list)
	slices.SortFunc(sorted, models.CompareTransactions)
	if sorted == nil {
		sorted = []models.Transaction{}
	}

	data, err := json.Marshal(sorted)
	if err != nil {
		s.log.Errorw("failed to encode transactions", "error", err, "count", len(sorted))
		return err
	}
	if err := s.backend.Put(ctx, TransactionsKey, data); err != nil {
		s.log.Errorw("failed to persist transactions", "error", err, "count", len(sorted))
		return err
	}
	return nil
}

// Append adds tx and persists the new list. The write happens under the
// store lock so snapshots reach the backend in mutation order, and it is
// detached from ctx cancellation so an accepted record is never left
// memory-only.
func (s *Store) Append(ctx context.Context, tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, tx)
	slices.SortFunc(s.items, models.CompareTransactions)
	_ = s.Save(context.WithoutCancel(ctx), s.items)
}

// Remove deletes the transaction with the given id and persists the new
// list. It reports whether a record was removed.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(t models.Transaction) bool { return t.ID == id })
	if idx < 0 {
		return false
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	_ = s.Save(context.WithoutCancel(ctx), s.items)
	return true
}

// List returns a sorted copy of the current list.
func (s *Store) List() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.items)
	if out == nil {
		out = []models.Transaction{}
	}
	return out
}

// Get returns the transaction with the given id.
func (s *Store) Get(id string) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
