package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pocketledger/internal/logger"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

const (
	defaultInsightTimeout = 60 * time.Second
	defaultRecentLimit    = 5
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Storage
	StorageBackend string
	DBPath         string
	DataDir        string

	// Insight
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	InsightTimeout time.Duration
	CurrencySymbol string

	// Presentation
	RecentLimit int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Warn(".env file not found, using environment only")
	}

	cfg := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendSQLite)),
		DBPath:         getEnv("DB_PATH", "pocketledger.db"),
		DataDir:        getEnv("DATA_DIR", "data"),

		GeminiAPIKey:   getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:  strings.TrimRight(getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"), "/"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
	}

	switch cfg.StorageBackend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be sqlite, file, or memory", cfg.StorageBackend)
	}

	cfg.InsightTimeout = parseTimeout(getEnv("INSIGHT_TIMEOUT", ""), defaultInsightTimeout)
	cfg.RecentLimit = parsePositiveInt("RECENT_LIMIT", getEnv("RECENT_LIMIT", ""), defaultRecentLimit)

	return cfg, nil
}

// InsightConfigured reports whether a credential for the text-generation API is present.
func (c *Config) InsightConfigured() bool {
	return c.GeminiAPIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseTimeout(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		logger.Get().Warnf("invalid INSIGHT_TIMEOUT value %q, falling back to %s", s, fallback)
		return fallback
	}
	return d
}

func parsePositiveInt(key, s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		logger.Get().Warnf("invalid %s value %q, falling back to %d", key, s, fallback)
		return fallback
	}
	return n
}
