package mem

import (
	"context"
	"sync"
	"time"

	"expensedesk/auth/cache"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Cache is an in-process AccountCache used when no redis address is
// configured. Expired entries are dropped lazily on read.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	now func() time.Time
}

var _ cache.AccountCache = (*Cache)(nil)

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, cache.ErrMiss
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, cache.ErrMiss
	}
	return e.value, nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}
