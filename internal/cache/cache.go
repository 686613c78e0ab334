package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github/custodia/signing-service/internal/config"
)

// NewRedisClient builds the redis client for locks and short-lived artifacts.
func NewRedisClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Endpoint,
		Password: cfg.Password,
	})
}

// Cache stores opaque JSON values under string keys with per-entry TTLs.
type Cache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// GetJSON loads and decodes the value under key. The second return is false
// when the key is absent or expired.
func (c *Cache) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to read cache entry")
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrap(err, "failed to decode cache entry")
	}

	return true, nil
}

// SetJSON encodes and stores the value under key with the given TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to encode cache entry")
	}

	return errors.Wrap(c.rdb.Set(ctx, key, raw, ttl).Err(), "failed to write cache entry")
}

// Locker hands out short-lived exclusive locks, used to serialize order
// selection per address.
type Locker struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLocker(rdb *redis.Client, ttl time.Duration) *Locker {
	return &Locker{
		rdb: rdb,
		ttl: ttl,
	}
}

// Acquire attempts to take the lock. Returns false on contention; the lock
// expires on its own after the TTL if never released.
func (l *Locker) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, "lock:"+key, 1, l.ttl).Result()

	return ok, errors.Wrap(err, "failed to acquire lock")
}

// Release drops the lock early.
func (l *Locker) Release(ctx context.Context, key string) error {
	return errors.Wrap(l.rdb.Del(ctx, "lock:"+key).Err(), "failed to release lock")
}
