package coach

import (
	"context"
	"errors"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

// Store is a string key/value store with per-entry expiry.
type Store interface {
	// Get reports ok=false for a missing or expired key.
	Get(ctx context.Context, key string) (val string, ok bool, err error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
}

type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, key, val, ttl).Err()
}

// MemoryStore keeps banners in process, used when redis is not wanted (local runs).
type MemoryStore struct {
	cache *freecache.Cache
}

func NewMemoryStore(sizeBytes int) *MemoryStore {
	return &MemoryStore{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	val, err := s.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key, val string, ttl time.Duration) error {
	expireSeconds := int(ttl / time.Second)
	if expireSeconds < 1 {
		expireSeconds = 1
	}
	return s.cache.Set([]byte(key), []byte(val), expireSeconds)
}
