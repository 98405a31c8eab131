package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client connected to the test Valkey.
// Skips the test if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test keys.
		keys, _ := client.Keys(ctx, "session:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// eachBackend runs fn once with an in-memory backend and once with Valkey.
func eachBackend(t *testing.T, fn func(t *testing.T, b Backend)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryBackend()) })
	t.Run("valkey", func(t *testing.T) { fn(t, NewValkeyBackend(testValkeyClient(t))) })
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("expected session cookie to be set")
	return nil
}

func TestSessionCreateAndGet(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		store := NewStore(b, false)
		w := httptest.NewRecorder()
		ctx := context.Background()

		data := &Data{AdminID: "admin-1", Email: "test@session.local", DisplayName: "Test Admin"}
		sessionID, err := store.Create(ctx, w, data)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if len(sessionID) != idLength*2 {
			t.Errorf("session id length: got %d", len(sessionID))
		}

		cookie := sessionCookie(t, w)
		if !cookie.HttpOnly {
			t.Error("expected HttpOnly cookie")
		}
		if cookie.Secure {
			t.Error("expected Secure=false for non-secure store")
		}

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(cookie)

		retrieved, err := store.Get(ctx, req)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if retrieved == nil {
			t.Fatal("expected session data, got nil")
		}
		if retrieved.Email != "test@session.local" || retrieved.AdminID != "admin-1" {
			t.Errorf("retrieved: %+v", retrieved)
		}
	})
}

func TestSessionGetMissing(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		store := NewStore(b, false)

		data, err := store.Get(context.Background(), httptest.NewRequest("GET", "/", nil))
		if err != nil || data != nil {
			t.Errorf("no cookie: data=%v err=%v", data, err)
		}

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "nonexistent-session-id"})
		data, err = store.Get(context.Background(), req)
		if err != nil || data != nil {
			t.Errorf("unknown session: data=%v err=%v", data, err)
		}
	})
}

func TestSessionUpdate(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		store := NewStore(b, false)
		w := httptest.NewRecorder()
		ctx := context.Background()

		data := &Data{AdminID: "admin-2", Email: "update@session.local"}
		if _, err := store.Create(ctx, w, data); err != nil {
			t.Fatal(err)
		}
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(sessionCookie(t, w))

		data.TwoFADone = true
		if err := store.Update(ctx, req, data); err != nil {
			t.Fatalf("Update: %v", err)
		}

		retrieved, _ := store.Get(ctx, req)
		if retrieved == nil || !retrieved.TwoFADone {
			t.Errorf("expected TwoFADone=true after update, got %+v", retrieved)
		}

		if err := store.Update(ctx, httptest.NewRequest("GET", "/", nil), &Data{}); err != ErrNoCookie {
			t.Errorf("update without cookie: got %v", err)
		}
	})
}

func TestSessionDestroy(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		store := NewStore(b, false)
		w := httptest.NewRecorder()
		ctx := context.Background()

		store.Create(ctx, w, &Data{AdminID: "admin-3", Email: "destroy@session.local"})
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(sessionCookie(t, w))

		w2 := httptest.NewRecorder()
		if err := store.Destroy(ctx, w2, req); err != nil {
			t.Fatalf("Destroy: %v", err)
		}
		for _, c := range w2.Result().Cookies() {
			if c.Name == CookieName && c.MaxAge != -1 {
				t.Error("expected MaxAge=-1 on destroyed cookie")
			}
		}

		if retrieved, _ := store.Get(ctx, req); retrieved != nil {
			t.Error("expected nil after destroy")
		}

		// Should not error even without a cookie.
		if err := store.Destroy(ctx, httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)); err != nil {
			t.Errorf("Destroy (no cookie): %v", err)
		}
	})
}

func TestSessionSecureCookie(t *testing.T) {
	store := NewStore(NewMemoryBackend(), true)

	w := httptest.NewRecorder()
	store.Create(context.Background(), w, &Data{AdminID: "admin-4", Email: "secure@test.local"})

	if !sessionCookie(t, w).Secure {
		t.Error("expected Secure=true for secure store")
	}
}

func TestMemoryBackendExpiry(t *testing.T) {
	b := NewMemoryBackend()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	ctx := context.Background()

	b.Set(ctx, "k", []byte("v"), time.Minute)
	if _, ok, _ := b.Get(ctx, "k"); !ok {
		t.Fatal("expected key before expiry")
	}

	now = now.Add(time.Minute)
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Error("expected key to expire after its TTL")
	}
}

func TestMemoryBackendSweepsOnSet(t *testing.T) {
	b := NewMemoryBackend()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	ctx := context.Background()

	b.Set(ctx, "short", []byte("v"), time.Minute)
	b.Set(ctx, "long", []byte("v"), time.Hour)

	tests := []struct {
		name    string
		advance time.Duration
		want    int
	}{
		{"within sweep interval", 30 * time.Second, 3},
		{"after short expiry", 2 * time.Minute, 2},
		{"after long expiry", 2 * time.Hour, 1},
	}
	for i, tt := range tests {
		now = now.Add(tt.advance)
		b.Set(ctx, fmt.Sprintf("fresh-%d", i), []byte("v"), time.Minute)
		b.mu.Lock()
		got := len(b.entries)
		b.mu.Unlock()
		if got != tt.want {
			t.Errorf("%s: got %d entries, want %d", tt.name, got, tt.want)
		}
	}
}
