package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore satisfies Store on top of a redis connection. Keys never
// expire; the cart and order log own their lifecycle.
type RedisStore struct{ Client *redis.Client }

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	v, err := s.Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(key, value string) error {
	return s.Client.Set(context.Background(), key, value, 0).Err()
}
