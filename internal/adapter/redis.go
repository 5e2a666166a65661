package adapter

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisClient defines the Redis operations the shared rate limiter needs, to enable mocking
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// Allow takes one request slot from the GCRA bucket under key
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)

	// Close closes the Redis connection
	Close() error
}

// RealRedisClient wraps the go-redis client and a redis_rate limiter bound to it
type RealRedisClient struct {
	client  *redis.Client
	limiter *redis_rate.Limiter
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RealRedisClient{
		client:  client,
		limiter: redis_rate.NewLimiter(client),
	}
}

func (r *RealRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RealRedisClient) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}

func (r *RealRedisClient) Close() error {
	return r.client.Close()
}
