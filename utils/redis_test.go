package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, s
}

func TestAuthSessionConsumedOnce(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	if err := SaveAuthSession(ctx, client, "state-1", AuthSession{Role: "lawyer"}); err != nil {
		t.Fatalf("SaveAuthSession failed: %v", err)
	}

	session, err := ConsumeAuthSession(ctx, client, "state-1")
	if err != nil {
		t.Fatalf("ConsumeAuthSession failed: %v", err)
	}
	if session.Role != "lawyer" {
		t.Errorf("expected role lawyer, got %s", session.Role)
	}

	if _, err := ConsumeAuthSession(ctx, client, "state-1"); !errors.Is(err, ErrAuthSessionNotFound) {
		t.Errorf("expected ErrAuthSessionNotFound on second use, got %v", err)
	}
}

func TestAuthSessionExpires(t *testing.T) {
	client, s := setupTestRedis(t)
	ctx := context.Background()

	if err := SaveAuthSession(ctx, client, "state-2", AuthSession{Role: "client"}); err != nil {
		t.Fatalf("SaveAuthSession failed: %v", err)
	}
	s.FastForward(AuthSessionTTL + 1)

	if _, err := ConsumeAuthSession(ctx, client, "state-2"); !errors.Is(err, ErrAuthSessionNotFound) {
		t.Errorf("expected ErrAuthSessionNotFound after ttl, got %v", err)
	}
}

func TestHealthMonitorCheck(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()
	monitor := NewHealthMonitor(nil, client)

	status := monitor.Check(context.Background())
	if status.Mongo {
		t.Error("expected mongo unhealthy without a client")
	}
	if len(status.Redis) != 1 || !status.Redis[0] {
		t.Errorf("expected redis healthy, got %v", status.Redis)
	}
	if status.Healthy() {
		t.Error("expected overall status unhealthy")
	}

	s.Close()
	status = monitor.Check(context.Background())
	if status.Redis[0] {
		t.Error("expected redis unhealthy after shutdown")
	}
	if monitor.Status().CheckedAt.IsZero() {
		t.Error("expected stored snapshot")
	}
}
