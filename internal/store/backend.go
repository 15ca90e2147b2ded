// Package store keeps the authoritative transaction list in memory and
// persists it wholesale through a key/value backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pocketledger/internal/config"
	"pocketledger/internal/models"
)

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Backend is a minimal key/value persistence boundary.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// NewBackend picks the backend named by cfg.StorageBackend. db is only used
// by the sqlite backend and may be nil otherwise.
func NewBackend(cfg *config.Config, db *gorm.DB) (Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		if db == nil {
			return nil, fmt.Errorf("sqlite backend requires a database")
		}
		return NewGormBackend(db), nil
	case config.BackendFile:
		return NewFileBackend(cfg.DataDir), nil
	case config.BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// GormBackend stores values in the kv_entries table.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend creates a GormBackend over an already migrated database.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Get returns the stored payload for key.
func (b *GormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	if err := b.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return entry.Value, nil
}

// Put upserts the payload for key.
func (b *GormBackend) Put(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// FileBackend stores each key as <dir>/<key>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at dir. The directory is
// created on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Get reads the file for key.
func (b *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return data, nil
}

// Put writes the value to a temp file and renames it over the old one so a
// crash never leaves a half-written snapshot.
func (b *FileBackend) Put(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(b.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path(key)); err != nil {
		return fmt.Errorf("replace %q: %w", key, err)
	}
	return nil
}

// MemoryBackend keeps values in process memory. Useful for tests and for
// running without any on-disk state.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value.
func (b *MemoryBackend) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = append([]byte(nil), value...)
	return nil
}
