package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/qolzam/mailrelay/internal/platform/config"
)

// RedisStorage adapts a Redis connection to the fiber.Storage interface so
// middleware such as the rate limiter can share state across instances.
type RedisStorage struct {
	client redis.UniversalClient
}

// NewRedisStorage connects to Redis with the given settings and verifies the
// connection before returning.
func NewRedisStorage(cfg config.RedisConfig) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.Database,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxConnAge:   cfg.MaxConnAge,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis unavailable: %w", err)
	}

	return &RedisStorage{client: client}, nil
}

// Get returns the value stored under key, or nil when the key is absent.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	result, err := s.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}
	return result, nil
}

// Set stores value under key. A zero exp means the key never expires.
func (s *RedisStorage) Set(key string, value []byte, exp time.Duration) error {
	if err := s.client.Set(context.Background(), key, value, exp).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// Delete removes the key.
func (s *RedisStorage) Delete(key string) error {
	if err := s.client.Del(context.Background(), key).Err(); err != nil {
		return fmt.Errorf("redis delete error: %w", err)
	}
	return nil
}

// Reset removes all keys from the current database.
func (s *RedisStorage) Reset() error {
	if err := s.client.FlushDB(context.Background()).Err(); err != nil {
		return fmt.Errorf("redis flushdb error: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStorage) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Ping tests the Redis connection.
func (s *RedisStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
