package database

import (
	"fmt"
	"os"
	"path/filepath"

	"pocketledger/internal/config"
)

// Config holds database configuration
type Config struct {
	Path string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(cfg *config.Config) (*Config, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("DB_PATH must not be empty")
	}
	return &Config{Path: cfg.DBPath}, nil
}

// DSN returns the SQLite connection string with a busy timeout, so the
// migration CLI and the server can share the file.
func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000", c.Path)
}

// MigrateURL returns the golang-migrate database URL for the same file.
func (c *Config) MigrateURL() string {
	return "sqlite3://" + c.Path
}

// ensureDir creates the parent directory of the database file if needed.
func (c *Config) ensureDir() error {
	dir := filepath.Dir(c.Path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
