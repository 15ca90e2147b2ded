package services

import (
	"context"
	"time"

	"pocketledger/internal/logger"
	"pocketledger/internal/store"
)

func init() {
	logger.Init("test")
}

// testNow is the reference "now" used across service tests.
var testNow = time.Date(2024, time.March, 17, 15, 30, 0, 0, time.UTC)

// steppingClock returns a clock that advances one millisecond per call.
func steppingClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
}

// newTestStore returns a loaded store over a memory backend.
func newTestStore() *store.Store {
	s := store.New(store.NewMemoryBackend())
	s.Load(context.Background())
	return s
}
