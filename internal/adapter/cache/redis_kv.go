package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// redisKV adapts a connected Redis client to the KV port.
type redisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) KV {
	return redisKV{rdb: rdb}
}

func (r redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, value, ttl).Err()
}
