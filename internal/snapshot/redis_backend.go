package snapshot

import (
	"context"

	"skill-manager/internal/infrastructure/cache"
)

type RedisBackend struct {
	redis  *cache.Redis
	prefix string
}

func NewRedisBackend(r *cache.Redis, prefix string) *RedisBackend {
	return &RedisBackend{redis: r, prefix: prefix}
}

func (b *RedisBackend) Key(name string) string {
	return b.prefix + name
}

func (b *RedisBackend) Read(ctx context.Context, name string) ([]byte, error) {
	data, found, err := b.redis.GetBytes(ctx, b.Key(name))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSnapshot
	}
	return data, nil
}

func (b *RedisBackend) Write(ctx context.Context, name string, data []byte) error {
	return b.redis.SetBytes(ctx, b.Key(name), data, 0)
}
