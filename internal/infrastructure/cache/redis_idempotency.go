package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesops/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "salesops:idem:"

// RedisIdempotencyStore reserves request keys with SET NX and a TTL so a
// retried request inside the window is detected.
type RedisIdempotencyStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.IIdempotencyStore = (*RedisIdempotencyStore)(nil)

func NewRedisIdempotencyStore(client redis.Cmdable, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client, ttl: ttl}
}

func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("idempotency key is empty")
	}
	ok, err := s.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	return ok, nil
}

// Release frees a key whose request failed so the client may retry it.
func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}

// Connect opens a client and checks the server answers.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}
