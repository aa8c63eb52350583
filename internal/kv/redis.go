package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed implementation of Store.
type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedisStore creates a new RedisStore on an existing client.
func NewRedisStore(rdb *redis.Client, ctx context.Context) *RedisStore {
	return &RedisStore{rdb: rdb, ctx: ctx}
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	v, err := s.rdb.Get(s.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(key, value string) error {
	return s.rdb.Set(s.ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.rdb.Del(s.ctx, key).Err()
}
