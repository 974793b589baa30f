package storage

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisStore is the key-value store backed by Redis, for deployments where the
// record collections have to outlive a single host.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an initialized Redis client.
func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil // key does not exist
	}
	return val, err
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
