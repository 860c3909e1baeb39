package cache

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis creates a Redis client using environment variables.
//
// Supported env vars:
//   - REDIS_ADDR (e.g. redis:6379; callers skip the cache entirely when unset)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
func ConnectRedis() *redis.Client {
	db, _ := strconv.Atoi(getenvDefault("REDIS_DB", "0"))

	rdb := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_ADDR"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Printf("[cache] redis connected addr=%s", rdb.Options().Addr)

	return rdb
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
