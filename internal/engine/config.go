package engine

import (
	"os"
	"strconv"

	"github.com/ecoquery/ecoquery-mcp/internal/matcher"
)

// Environment variables consulted by FromEnv.
const (
	EnvKBPath    = "ECOQUERY_KB_PATH"
	EnvKBDSN     = "ECOQUERY_KB_DSN"
	EnvCacheSize = "ECOQUERY_CACHE_SIZE"
)

// defaultCacheSize bounds the result cache when no override is given.
const defaultCacheSize = 256

// Config controls engine construction.
type Config struct {
	// KBPath points to a JSON knowledge-base document. Empty skips the
	// JSON source.
	KBPath string
	// KBDSN points to a SQLite knowledge-base file. Empty skips the
	// SQLite source.
	KBDSN string
	// CacheSize bounds the LRU result cache. Zero or negative disables
	// caching.
	CacheSize int
	// Weights overrides the scoring weights. Nil uses
	// matcher.DefaultWeights.
	Weights *matcher.Weights
}

// weights resolves the effective scoring weights.
func (c Config) weights() matcher.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return matcher.DefaultWeights()
}

// DefaultConfig returns a config with no external sources and the default
// cache size. An engine built from it serves the built-in knowledge base.
func DefaultConfig() Config {
	return Config{CacheSize: defaultCacheSize}
}

// FromEnv builds a config from the ECOQUERY_* environment variables,
// falling back to defaults for anything unset or unparseable.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.KBPath = os.Getenv(EnvKBPath)
	cfg.KBDSN = os.Getenv(EnvKBDSN)
	if raw := os.Getenv(EnvCacheSize); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			cfg.CacheSize = size
		}
	}
	return cfg
}
