package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "session:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	key := keyPrefix + token
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (uint, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}

	return uint(id), nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
