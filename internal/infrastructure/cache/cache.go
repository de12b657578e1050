package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a key/value store with TTL over redis, JSON-encoding values.
// Strictly an optimization: every reader must fall back to persistence on a
// miss, and every writer invalidates inside its lock's critical section.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache { return &Cache{rdb: rdb} }

func (c *Cache) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, payload, ttl).Err()
}

// Get unmarshals the cached value into dest and reports whether the key was
// present. A miss is not an error.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes key and reports whether it existed.
func (c *Cache) Delete(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Del(ctx, key).Result()
	return n > 0, err
}

// casScript swaps the value only if the current value matches, preserving
// any remaining TTL.
var casScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) ~= ARGV[1] then
  return 0
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl > 0 then
  redis.call("SET", KEYS[1], ARGV[2], "PX", ttl)
else
  redis.call("SET", KEYS[1], ARGV[2])
end
return 1
`)

// CompareAndSet atomically replaces the value at key with newValue if the
// stored value equals expected. Returns false when the values differ or the
// key is absent.
func (c *Cache) CompareAndSet(ctx context.Context, key string, expected, newValue any) (bool, error) {
	exp, err := json.Marshal(expected)
	if err != nil {
		return false, err
	}
	next, err := json.Marshal(newValue)
	if err != nil {
		return false, err
	}
	n, err := casScript.Run(ctx, c.rdb, []string{key}, string(exp), string(next)).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
