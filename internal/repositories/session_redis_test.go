package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"eqsense/pkg/utils"
)

func newTestRedisStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisSessionStore(client, time.Minute), mr
}

func TestRedisSessionStore_SaveAndGet(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	session := testSession("abc")
	session.Completed = true
	session.CategoryScores = map[string]float64{"empathy": 62.5}
	session.OverallScore = 55.0
	session.EQLevel = "Average EQ"

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.Completed || got.OverallScore != 55.0 {
		t.Fatalf("session not round-tripped: %+v", got)
	}
	if got.CategoryScores["empathy"] != 62.5 {
		t.Fatalf("category scores not round-tripped: %v", got.CategoryScores)
	}
}

func TestRedisSessionStore_GetMissing(t *testing.T) {
	store, _ := newTestRedisStore(t)
	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, utils.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRedisSessionStore_TTLExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession("abc")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "abc")
	if !errors.Is(err, utils.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}

func TestRedisSessionStore_Delete(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession("abc")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "abc"); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Fatalf("expected deleted session to be gone, got %v", err)
	}
}

func TestRedisSessionStore_KeyNamespace(t *testing.T) {
	store, mr := newTestRedisStore(t)

	if err := store.Save(context.Background(), testSession("abc")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !mr.Exists("eq:session:abc") {
		t.Fatal("session key should live under the eq:session: prefix")
	}
}
