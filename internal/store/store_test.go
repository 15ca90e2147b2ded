package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pocketledger/internal/config"
	"pocketledger/internal/logger"
	"pocketledger/internal/models"
	"pocketledger/internal/testutil"
)

func init() {
	logger.Init("test")
}

// failingBackend rejects every write and optionally every read.
type failingBackend struct {
	inner     Backend
	failReads bool
	writes    int
}

func (b *failingBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if b.failReads {
		return nil, errors.New("disk unavailable")
	}
	return b.inner.Get(ctx, key)
}

func (b *failingBackend) Put(context.Context, string, []byte) error {
	b.writes++
	return errors.New("disk full")
}

var _ Backend = (*failingBackend)(nil)

func TestBackends(t *testing.T) {
	ctx := context.Background()

	backends := map[string]func(t *testing.T) Backend{
		"memory": func(t *testing.T) Backend { return NewMemoryBackend() },
		"file":   func(t *testing.T) Backend { return NewFileBackend(filepath.Join(t.TempDir(), "data")) },
		"gorm": func(t *testing.T) Backend {
			db := testutil.SetupTestDB(t)
			t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
			return NewGormBackend(db)
		},
	}

	for name, build := range backends {
		t.Run(name, func(t *testing.T) {
			b := build(t)

			if _, err := b.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			testutil.AssertNoError(t, b.Put(ctx, "k", []byte("first")))
			testutil.AssertNoError(t, b.Put(ctx, "k", []byte("second")))

			got, err := b.Get(ctx, "k")
			testutil.AssertNoError(t, err)
			if string(got) != "second" {
				t.Errorf("expected overwritten value, got %q", got)
			}
		})
	}
}

func TestNewBackend(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		b, err := NewBackend(&config.Config{StorageBackend: config.BackendMemory}, nil)
		testutil.AssertNoError(t, err)
		if _, ok := b.(*MemoryBackend); !ok {
			t.Errorf("expected *MemoryBackend, got %T", b)
		}
	})

	t.Run("file", func(t *testing.T) {
		b, err := NewBackend(&config.Config{StorageBackend: config.BackendFile, DataDir: t.TempDir()}, nil)
		testutil.AssertNoError(t, err)
		if _, ok := b.(*FileBackend); !ok {
			t.Errorf("expected *FileBackend, got %T", b)
		}
	})

	t.Run("sqlite requires a database", func(t *testing.T) {
		if _, err := NewBackend(&config.Config{StorageBackend: config.BackendSQLite}, nil); err == nil {
			t.Fatal("expected error without a database")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := NewBackend(&config.Config{StorageBackend: "redis"}, nil); err == nil {
			t.Fatal("expected error for unknown backend")
		}
	})
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("empty backend yields empty list", func(t *testing.T) {
		s := New(NewMemoryBackend())
		got := s.Load(ctx)
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil list, got %v", got)
		}
	})

	t.Run("corrupt snapshot yields empty list", func(t *testing.T) {
		b := NewMemoryBackend()
		testutil.AssertNoError(t, b.Put(ctx, TransactionsKey, []byte("{not json")))

		s := New(b)
		if got := s.Load(ctx); len(got) != 0 {
			t.Fatalf("expected empty list, got %d items", len(got))
		}
	})

	t.Run("read failure yields empty list", func(t *testing.T) {
		s := New(&failingBackend{inner: NewMemoryBackend(), failReads: true})
		if got := s.Load(ctx); len(got) != 0 {
			t.Fatalf("expected empty list, got %d items", len(got))
		}
	})

	t.Run("sorts loaded records", func(t *testing.T) {
		b := NewMemoryBackend()
		older := testutil.NewTestExpense(t, models.CategoryGroceries, "10", "2024-03-01")
		newer := testutil.NewTestExpense(t, models.CategoryTransport, "5", "2024-03-05")
		testutil.AssertNoError(t, New(b).Save(ctx, []models.Transaction{older, newer}))

		got := New(b).Load(ctx)
		if len(got) != 2 || got[0].ID != newer.ID || got[1].ID != older.ID {
			t.Fatalf("expected newest first, got %v", got)
		}
	})
}

func TestStore_RoundTripIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	list := []models.Transaction{
		testutil.NewTestExpense(t, models.CategoryGroceries, "100.25", "2024-03-10"),
		testutil.NewTestIncome(t, models.CategorySalary, "500", "2024-03-10"),
		testutil.NewTestExpense(t, models.CategoryFoodDining, "0.5", "2024-02-28"),
	}
	list[0].Note = "weekly shop, \"organic\""
	testutil.AssertNoError(t, New(b).Save(ctx, list))
	first, err := b.Get(ctx, TransactionsKey)
	testutil.AssertNoError(t, err)

	s := New(b)
	testutil.AssertNoError(t, s.Save(ctx, s.Load(ctx)))
	second, err := b.Get(ctx, TransactionsKey)
	testutil.AssertNoError(t, err)

	if !bytes.Equal(first, second) {
		t.Fatalf("round trip changed persisted bytes:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestStore_AppendAndRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("append persists immediately", func(t *testing.T) {
		b := NewMemoryBackend()
		s := New(b)
		s.Load(ctx)

		tx := testutil.NewTestExpense(t, models.CategoryPets, "42", "2024-03-10")
		s.Append(ctx, tx)

		if s.Len() != 1 {
			t.Fatalf("expected 1 item, got %d", s.Len())
		}
		reloaded := New(b).Load(ctx)
		if len(reloaded) != 1 || reloaded[0].ID != tx.ID {
			t.Fatalf("expected persisted record, got %v", reloaded)
		}
		testutil.AssertDecimal(t, reloaded[0].Amount, "42")
	})

	t.Run("append keeps display order", func(t *testing.T) {
		s := New(NewMemoryBackend())
		first := testutil.NewTestExpense(t, models.CategoryPets, "1", "2024-03-10")
		second := testutil.NewTestExpense(t, models.CategoryPets, "2", "2024-03-10")
		earlier := testutil.NewTestExpense(t, models.CategoryPets, "3", "2024-03-01")
		s.Append(ctx, first)
		s.Append(ctx, earlier)
		s.Append(ctx, second)

		got := s.List()
		want := []string{second.ID, first.ID, earlier.ID}
		for i, id := range want {
			if got[i].ID != id {
				t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
			}
		}
	})

	t.Run("remove", func(t *testing.T) {
		b := NewMemoryBackend()
		s := New(b)
		keep := testutil.NewTestIncome(t, models.CategorySalary, "500", "2024-03-10")
		drop := testutil.NewTestExpense(t, models.CategoryGroceries, "100", "2024-03-10")
		s.Append(ctx, keep)
		s.Append(ctx, drop)

		if !s.Remove(ctx, drop.ID) {
			t.Fatal("expected removal to succeed")
		}
		if s.Remove(ctx, drop.ID) {
			t.Fatal("second removal should report false")
		}
		if _, ok := s.Get(drop.ID); ok {
			t.Error("removed record is still retrievable")
		}
		reloaded := New(b).Load(ctx)
		if len(reloaded) != 1 || reloaded[0].ID != keep.ID {
			t.Fatalf("expected only the kept record persisted, got %v", reloaded)
		}
	})

	t.Run("write failure keeps in-memory state", func(t *testing.T) {
		fb := &failingBackend{inner: NewMemoryBackend()}
		s := New(fb)
		tx := testutil.NewTestExpense(t, models.CategoryShopping, "9.99", "2024-03-10")

		s.Append(ctx, tx)

		if fb.writes != 1 {
			t.Errorf("expected one write attempt, got %d", fb.writes)
		}
		if got, ok := s.Get(tx.ID); !ok || got.ID != tx.ID {
			t.Fatal("expected the record to remain in memory")
		}
		if err := s.Save(ctx, s.List()); err == nil {
			t.Error("expected Save to report the backend failure")
		}
	})

	t.Run("cancelled context still persists", func(t *testing.T) {
		b := NewGormBackend(testutil.SetupTestDB(t))
		s := New(b)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		keep := testutil.NewTestIncome(t, models.CategorySalary, "500", "2024-03-10")
		drop := testutil.NewTestExpense(t, models.CategoryGroceries, "100", "2024-03-10")
		s.Append(cancelled, keep)
		s.Append(cancelled, drop)
		if !s.Remove(cancelled, drop.ID) {
			t.Fatal("expected removal to succeed")
		}

		reloaded := New(b).Load(ctx)
		if len(reloaded) != 1 || reloaded[0].ID != keep.ID {
			t.Fatalf("expected the kept record persisted despite cancellation, got %v", reloaded)
		}
	})

	t.Run("list returns a copy", func(t *testing.T) {
		s := New(NewMemoryBackend())
		s.Append(ctx, testutil.NewTestExpense(t, models.CategoryPets, "1", "2024-03-10"))

		got := s.List()
		got[0].Note = "mutated"
		if s.List()[0].Note == "mutated" {
			t.Error("mutating List() result changed the store")
		}
	})
}

func TestFileBackend_WritesJSONFile(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "ledger")
	s := New(NewFileBackend(dir))
	s.Append(ctx, testutil.NewTestIncome(t, models.CategoryFreelance, "250", "2024-03-10"))

	data, err := os.ReadFile(filepath.Join(dir, TransactionsKey+".json"))
	testutil.AssertNoError(t, err)
	if !bytes.Contains(data, []byte(`"category":"Freelance"`)) {
		t.Errorf("unexpected file contents: %s", data)
	}

	entries, err := os.ReadDir(dir)
	testutil.AssertNoError(t, err)
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}
}
