package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey holds the sorted set of cached résumé ids.
const DefaultRedisKey = "vagas:curriculos"

// RedisIDCache keeps ids in a sorted set scored by insertion time, so List
// returns them oldest first like the file cache.
type RedisIDCache struct {
	rdb *redis.Client
	key string
	now func() time.Time
}

// NewRedisIDCache connects to rawURL and checks the connection.
func NewRedisIDCache(ctx context.Context, rawURL, key string) (*RedisIDCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if strings.TrimSpace(key) == "" {
		key = DefaultRedisKey
	}

	return &RedisIDCache{rdb: rdb, key: key, now: time.Now}, nil
}

func (c *RedisIDCache) List(ctx context.Context) ([]string, error) {
	ids, err := c.rdb.ZRange(ctx, c.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("zrange failed: %w", err)
	}
	return ids, nil
}

// Add keeps the original position of an id that is already cached.
func (c *RedisIDCache) Add(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	err := c.rdb.ZAddNX(ctx, c.key, redis.Z{
		Score:  float64(c.now().UnixNano()),
		Member: id,
	}).Err()
	if err != nil {
		return fmt.Errorf("zadd failed: %w", err)
	}
	return nil
}

func (c *RedisIDCache) Remove(ctx context.Context, id string) error {
	if err := c.rdb.ZRem(ctx, c.key, id).Err(); err != nil {
		return fmt.Errorf("zrem failed: %w", err)
	}
	return nil
}

func (c *RedisIDCache) Close() error {
	return c.rdb.Close()
}
