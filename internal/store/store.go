// Package store caches upstream program guide responses. Backends are an
// embedded Badger database, a SQLite file or Redis.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// Cache stores response bodies by key until they expire.
type Cache interface {
	// Get reports a miss as ok == false with a nil error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Backend names a Cache implementation.
type Backend string

// Backends.
const (
	BackendNone   Backend = "none"
	BackendBadger Backend = "badger"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

const keyPrefix = "pg:"

// ErrInvalidTTL is returned by Set for a TTL that is not positive.
var ErrInvalidTTL = errors.New("store: ttl must be positive")

// Key derives the cache key for a request URL. The URL carries the API key,
// so only its digest is stored.
func Key(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return keyPrefix + hex.EncodeToString(sum[:])
}
