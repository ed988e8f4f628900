package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisListKeyPrefix namespaces cached list responses
	RedisListKeyPrefix = "hospital:list:"
	// RedisListGenerationKey holds the counter Invalidate bumps
	RedisListGenerationKey = RedisListKeyPrefix + "generation"

	ListKeyDepartments  = "departments"
	ListKeyDoctors      = "doctors"
	ListKeyPatients     = "patients"
	ListKeyAppointments = "appointments"

	redisListEntryPrefix = RedisListKeyPrefix + "entry:"
	scanBatchSize        = 100
)

// ListCache caches unfiltered list responses. Cascading deletes touch
// several record kinds at once, so invalidation always drops every list.
//
// Entries are stored under the generation read before the list was loaded.
// Invalidate starts a new generation, so a value loaded before a write and
// stored after it is never served.
type ListCache interface {
	Generation(ctx context.Context) (int64, error)
	// Get loads the cached value into dest. It reports false on a miss.
	Get(ctx context.Context, generation int64, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, generation int64, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

type redisListCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisListCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) ListCache {
	return &redisListCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// RedisListEntryKey is the redis key holding key's list for generation.
func RedisListEntryKey(generation int64, key string) string {
	return fmt.Sprintf("%s%d:%s", redisListEntryPrefix, generation, key)
}

func (c *redisListCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.redisClient.Get(ctx, RedisListGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get list cache generation: %w", err)
	}
	return generation, nil
}

func (c *redisListCache) Get(ctx context.Context, generation int64, key string, dest interface{}) (bool, error) {
	raw, err := c.redisClient.Get(ctx, RedisListEntryKey(generation, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get cached list %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cached list %s: %w", key, err)
	}
	return true, nil
}

func (c *redisListCache) Set(ctx context.Context, generation int64, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode list %s: %w", key, err)
	}

	if err := c.redisClient.Set(ctx, RedisListEntryKey(generation, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache list %s: %w", key, err)
	}
	return nil
}

// Invalidate bumps the generation first so readers stop hitting old entries,
// then deletes whatever entries are left. Entries written for an old
// generation after the sweep expire with their TTL.
func (c *redisListCache) Invalidate(ctx context.Context) error {
	if err := c.redisClient.Incr(ctx, RedisListGenerationKey).Err(); err != nil {
		return fmt.Errorf("bump list cache generation: %w", err)
	}

	var cursor uint64
	for {
		keys, next, err := c.redisClient.Scan(ctx, cursor, redisListEntryPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("scan cached lists: %w", err)
		}

		if len(keys) > 0 {
			if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete cached lists: %w", err)
			}
			c.log.Debugf("Invalidated %d cached lists", len(keys))
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}

type noopListCache struct{}

// NewNoopListCache returns a ListCache that never stores anything.
func NewNoopListCache() ListCache {
	return noopListCache{}
}

func (noopListCache) Generation(context.Context) (int64, error) { return 0, nil }

func (noopListCache) Get(context.Context, int64, string, interface{}) (bool, error) {
	return false, nil
}

func (noopListCache) Set(context.Context, int64, string, interface{}) error { return nil }

func (noopListCache) Invalidate(context.Context) error { return nil }
