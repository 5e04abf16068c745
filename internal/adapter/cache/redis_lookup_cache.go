package cache

import (
	"context"
	"errors"
	"time"

	"import_admin/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisLookupCache keeps the car and client option lists.
// A nil client turns every call into a miss.
type RedisLookupCache struct {
	client *redis.Client
}

var _ interfaces.ILookupCache = (*RedisLookupCache)(nil)

func NewRedisLookupCache(client *redis.Client) *RedisLookupCache {
	return &RedisLookupCache{client: client}
}

func (c *RedisLookupCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisLookupCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisLookupCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
