package infrastructure

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/fyzanshaik/timer-game/internal/config"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache() *RedisCache {
	// Get Redis configuration from environment variables
	host := config.EnvString("REDIS_HOST", "localhost")
	port := config.EnvString("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")
	db := config.EnvInt("REDIS_DB", 0)

	// Alternative: Use REDIS_URL if provided
	redisURL := os.Getenv("REDIS_URL")
	if redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err == nil {
			client := redis.NewClient(opt)
			ctx := context.Background()
			if err := client.Ping(ctx).Err(); err != nil {
				log.Printf("Warning: Redis connection failed with REDIS_URL: %v", err)
			} else {
				log.Printf("Connected to Redis using REDIS_URL: %s", redisURL)
				return &RedisCache{client: client}
			}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
		log.Printf("Redis will be disabled. Responses will always be served from the store.")
		return &RedisCache{client: nil}
	}

	log.Printf("Connected to Redis at %s:%s", host, port)
	return &RedisCache{
		client: client,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if r.client == nil {
		return nil, false // Redis disabled
	}
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to read cache key %s: %v", key, err)
		}
		return nil, false
	}
	return payload, true
}

func (r *RedisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if r.client == nil {
		return // Redis disabled
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("Failed to cache key %s: %v", key, err)
	}
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) {
	if r.client == nil {
		return // Redis disabled
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate cache keys %v: %v", keys, err)
	}
}

func (r *RedisCache) Close() error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Close()
}
