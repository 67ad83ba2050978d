package redis

import (
	"context"
	"errors"
	"time"

	"expensedesk/auth/cache"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Cache struct {
	client *redis.Client
	log    *logrus.Entry
}

var _ cache.AccountCache = (*Cache)(nil)

func New(l *logrus.Logger, addr string) *Cache {
	log := l.WithFields(map[string]interface{}{
		"from": "redis-cache",
	})
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	log.WithField("addr", addr).Info("redis cache configured")
	return &Cache{
		client: client,
		log:    log,
	}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cache.ErrMiss
		}
		return nil, err
	}
	return val, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
