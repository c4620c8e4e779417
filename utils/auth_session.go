// File: lexify/utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrAuthSessionNotFound is returned when an OAuth state is unknown, expired or already used.
var ErrAuthSessionNotFound = errors.New("auth session not found or expired")

// AuthSession represents a pending federated login, keyed by its OAuth state value.
type AuthSession struct {
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveAuthSession saves the pending login in Redis with AuthSessionTTL.
func SaveAuthSession(ctx context.Context, client *redis.Client, state string, session AuthSession) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	if err := client.Set(ctx, AuthSessionPrefix+state, data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// ConsumeAuthSession fetches and deletes the pending login so a state value is redeemable once.
func ConsumeAuthSession(ctx context.Context, client *redis.Client, state string) (*AuthSession, error) {
	data, err := client.GetDel(ctx, AuthSessionPrefix+state).Result()
	if err == redis.Nil {
		return nil, ErrAuthSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load auth session: %w", err)
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}
