package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lexify/utils"

	"github.com/go-redis/redis/v8"
)

var ErrNoSession = errors.New("no active session")

// Store persists session records by session id.
type Store interface {
	Save(ctx context.Context, sid string, rec Record, ttl time.Duration) error
	Load(ctx context.Context, sid string) (*Record, error)
	Delete(ctx context.Context, sid string) error
}

// RedisStore keeps records as JSON under session:{sid}.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, sid string, rec Record, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}
	if err := s.client.Set(ctx, utils.SessionPrefix+sid, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session record: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, sid string) (*Record, error) {
	data, err := s.client.Get(ctx, utils.SessionPrefix+sid).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session record: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, utils.SessionPrefix+sid).Err(); err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}
	return nil
}
