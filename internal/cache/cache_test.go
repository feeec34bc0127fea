// cache_test.go contains integration tests for the catalog and page
// caches. Tests are skipped when Valkey is not reachable.
package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"promptoteka/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testClient returns a Valkey client on DB 15 for tests, skipping when the
// server is unreachable.
func testClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"page:*", "catalog:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

func TestCatalogCacheRoundTrip(t *testing.T) {
	client := testClient(t)
	cc := NewCatalogCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := cc.Get(ctx); ok {
		t.Fatal("expected miss on empty cache")
	}

	prompts := []models.Prompt{
		{Title: "first", Tags: []string{"marketing"}},
		{Title: "second", Tags: []string{"python", "code"}},
	}
	cc.Set(ctx, prompts)

	got, ok := cc.Get(ctx)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 2 || got[0].Title != "first" || len(got[1].Tags) != 2 {
		t.Errorf("cached catalog = %+v, want original two prompts", got)
	}
}

// TestCatalogCacheInvalidate pins the invalidation contract: after
// Invalidate, the next Get misses.
func TestCatalogCacheInvalidate(t *testing.T) {
	client := testClient(t)
	cc := NewCatalogCache(client, time.Minute)
	ctx := context.Background()

	cc.Set(ctx, []models.Prompt{{Title: "stale"}})
	if _, ok := cc.Get(ctx); !ok {
		t.Fatal("expected hit before invalidation")
	}

	cc.Invalidate(ctx)
	if _, ok := cc.Get(ctx); ok {
		t.Fatal("expected miss after invalidation")
	}
}

// TestCatalogCacheCorruptPayload verifies a bad payload reads as a miss.
func TestCatalogCacheCorruptPayload(t *testing.T) {
	client := testClient(t)
	cc := NewCatalogCache(client, time.Minute)
	ctx := context.Background()

	client.Set(ctx, "catalog:prompts", "{not json", time.Minute)
	if _, ok := cc.Get(ctx); ok {
		t.Fatal("corrupt payload should read as miss")
	}
}

func TestPageCache(t *testing.T) {
	client := testClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	key := PromptKey("abc-123")
	if _, ok := pc.Get(ctx, key); ok {
		t.Fatal("expected miss on empty cache")
	}

	pc.Set(ctx, key, []byte("<html>cached</html>"))
	html, ok := pc.Get(ctx, key)
	if !ok || string(html) != "<html>cached</html>" {
		t.Errorf("Get = %q, %v; want cached HTML", html, ok)
	}

	pc.Invalidate(ctx, key)
	if _, ok := pc.Get(ctx, key); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	client := testClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	pc.Set(ctx, PromptKey("one"), []byte("a"))
	pc.Set(ctx, ArticleKey("two"), []byte("b"))
	pc.InvalidateAll(ctx)

	if _, ok := pc.Get(ctx, PromptKey("one")); ok {
		t.Error("prompt page survived InvalidateAll")
	}
	if _, ok := pc.Get(ctx, ArticleKey("two")); ok {
		t.Error("article page survived InvalidateAll")
	}
}
