//go:build integration

package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/daireno/pkg/editor"
)

// Run with: DAIRENO_REDIS_ADDR=localhost:6379 go test -tags integration ./pkg/session
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("DAIRENO_REDIS_ADDR")
	if addr == "" {
		t.Skip("DAIRENO_REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := NewRedisStore(ctx, RedisConfig{Addr: addr, KeyPrefix: "daireno:test:" + NewID() + ":"})
	if err != nil {
		t.Fatalf("NewRedisStore() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisStoreIntegration(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	sess := New(testState(t), time.Minute)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil || got == nil {
		t.Fatalf("Get() = %v, %v", got, err)
	}
	if got.State.Setup != (editor.Setup{NormalFloors: 2, Basements: 1, Apartments: 2}) {
		t.Errorf("Setup = %+v", got.State.Setup)
	}

	ttl, err := store.client.TTL(ctx, store.key(sess.ID)).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %v, %v", ttl, err)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if got, err := store.Get(ctx, sess.ID); got != nil || err != nil {
		t.Errorf("Get(deleted) = %v, %v", got, err)
	}
}

func TestRedisStoreExpiredSetDeletes(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	sess := New(editor.State{}, time.Minute)
	store.Set(ctx, sess)
	sess.ExpiresAt = time.Now().Add(-time.Second)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set(expired) error: %v", err)
	}
	if got, _ := store.Get(ctx, sess.ID); got != nil {
		t.Error("expired Set should remove the session")
	}
}
