package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pasarkita/marketplace/internal/domain"
)

// RedisStore keeps session snapshots under "session:<token>" with a TTL,
// for deployments where one process is not enough.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (s *RedisStore) Create(ctx context.Context, user domain.User) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("json.Marshal -> %w", err)
	}

	if err := s.rdb.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("s.rdb.Set -> %w", err)
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (domain.User, bool, error) {
	payload, err := s.rdb.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.User{}, false, nil
		}

		return domain.User{}, false, fmt.Errorf("s.rdb.Get -> %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return domain.User{}, false, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return user, true, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("s.rdb.Del -> %w", err)
	}

	return nil
}

func (s *RedisStore) key(token string) string {
	return "session:" + token
}
