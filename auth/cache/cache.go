package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// AccountCache is a key/value store with per-entry TTL. Values are raw
// bytes; the auth service serializes accounts to JSON before storing.
// Any other error from Get means the cache itself is unavailable and
// callers are expected to fall back to the source of truth.
type AccountCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
