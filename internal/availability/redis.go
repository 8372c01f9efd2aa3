package availability

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// ======================================================
// STORE REDIS (SETNX)
// ======================================================

const redisKeyPrefix = "slot:claim:"

// RedisStore implementa o claim atômico com SETNX — o próprio Redis
// garante que só um cliente grava a chave.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) IsFree(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *RedisStore) TryClaim(ctx context.Context, key string) (bool, error) {
	// sem TTL: o claim só é desfeito por Release explícito
	return s.client.SetNX(ctx, redisKeyPrefix+key, "1", 0).Result()
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKeyPrefix+key).Err()
}

var _ Store = (*RedisStore)(nil)
