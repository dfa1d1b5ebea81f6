package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/searchbridge/search-proxy/internal/metrics"
)

const defaultKeyPrefix = "search-proxy:translations:"

// RedisCache is a Redis-backed translation cache. Expiry is delegated to
// Redis via per-key TTLs; capacity bounding is left to Redis' own eviction
// policy.
type RedisCache struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// NewRedisCache creates a Redis cache from a connection URL and verifies the
// connection.
func NewRedisCache(url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisCacheFromClient(client, ttl), nil
}

// NewRedisCacheFromClient creates a RedisCache from an existing client.
func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{
		client:    client,
		ttl:       ttl,
		keyPrefix: defaultKeyPrefix,
	}
}

// Get retrieves a translation from Redis.
func (c *RedisCache) Get(sourceText string) (string, bool) {
	ctx := context.Background()
	val, err := c.client.Get(ctx, c.keyPrefix+Normalize(sourceText)).Result()
	if err == redis.Nil {
		metrics.RecordCacheOperation("get", "miss")
		return "", false
	}
	if err != nil {
		log.Warn().Err(err).Msg("Redis cache lookup failed")
		metrics.RecordCacheOperation("get", "error")
		return "", false
	}

	metrics.RecordCacheOperation("get", "hit")
	return val, true
}

// Set stores a translation in Redis with the configured TTL.
func (c *RedisCache) Set(sourceText, translated string) error {
	ctx := context.Background()
	if err := c.client.Set(ctx, c.keyPrefix+Normalize(sourceText), translated, c.ttl).Err(); err != nil {
		metrics.RecordCacheOperation("set", "error")
		return err
	}
	metrics.RecordCacheOperation("set", "success")
	return nil
}

// Clear removes all entries under the cache's key prefix.
func (c *RedisCache) Clear() error {
	ctx := context.Background()

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.keyPrefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	metrics.RecordCacheOperation("clear", "success")
	return nil
}

var _ TranslationCache = (*RedisCache)(nil)
