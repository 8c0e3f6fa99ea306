package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/smart-expense/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) (*RedisTipsCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTipsCache(client), server
}

func sampleResult() *adapter.SavingsTipsResult {
	return &adapter.SavingsTipsResult{
		Alerts:          []string{"You have spent more than 85% of your budget."},
		Recommendations: []string{"Review your monthly subscriptions."},
	}
}

func TestTipsCacheMissOnEmptyCache(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok, err := cache.Get(context.Background(), "tips:user-1:2024-06:abc")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Error("expected a miss on an empty cache")
	}
}

func TestTipsCacheSetThenGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	key := "tips:user-1:2024-06:abc"

	if err := cache.Set(ctx, key, sampleResult(), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, ok, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if len(got.Alerts) != 1 || got.Alerts[0] != "You have spent more than 85% of your budget." {
		t.Errorf("unexpected alerts: %v", got.Alerts)
	}
	if len(got.Recommendations) != 1 {
		t.Errorf("unexpected recommendations: %v", got.Recommendations)
	}
}

func TestTipsCacheCorruptEntryBehavesLikeMiss(t *testing.T) {
	cache, server := newTestCache(t)
	key := "tips:user-1:2024-06:abc"

	server.Set(key, "not-json")

	_, ok, err := cache.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Error("expected a corrupt entry to behave like a miss")
	}
}

func TestTipsCacheInvalidateDropsAllFingerprints(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	// Two fingerprints for the same user and month: the data changed between
	// writes, so both keys exist under one index.
	keys := []string{
		"tips:user-1:2024-06:fingerprint-a",
		"tips:user-1:2024-06:fingerprint-b",
	}
	for _, key := range keys {
		if err := cache.Set(ctx, key, sampleResult(), time.Hour); err != nil {
			t.Fatalf("Set(%s) returned error: %v", key, err)
		}
	}

	// A different month must survive the invalidation.
	otherKey := "tips:user-1:2024-07:fingerprint-c"
	if err := cache.Set(ctx, otherKey, sampleResult(), time.Hour); err != nil {
		t.Fatalf("Set(%s) returned error: %v", otherKey, err)
	}

	if err := cache.Invalidate(ctx, "user-1", "2024-06"); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}

	for _, key := range keys {
		if server.Exists(key) {
			t.Errorf("expected key %s to be gone after invalidation", key)
		}
	}
	if server.Exists("tips-index:user-1:2024-06") {
		t.Error("expected the index set to be gone after invalidation")
	}

	if _, ok, _ := cache.Get(ctx, otherKey); !ok {
		t.Error("expected the other month's entry to survive invalidation")
	}
}

func TestTipsCacheInvalidateEmptyIndexIsNoop(t *testing.T) {
	cache, _ := newTestCache(t)

	if err := cache.Invalidate(context.Background(), "user-1", "2024-06"); err != nil {
		t.Fatalf("Invalidate on empty index returned error: %v", err)
	}
}

func TestIndexKeyFor(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		want   string
		wantOK bool
	}{
		{"well-formed key", "tips:user-1:2024-06:abc", "tips-index:user-1:2024-06", true},
		{"wrong prefix", "other:user-1:2024-06:abc", "", false},
		{"too few segments", "tips:user-1:2024-06", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := indexKeyFor(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("indexKeyFor(%s) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("indexKeyFor(%s) = %s, want %s", tt.key, got, tt.want)
			}
		})
	}
}
