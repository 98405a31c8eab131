// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go caches serialized JSON responses of public list endpoints in
// Valkey. Writes to an entity invalidate every cached response under that
// entity's prefix.

package cache

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached responses.
	responseKeyPrefix = "api:"

	// DefaultResponseTTL is how long a response stays cached.
	DefaultResponseTTL = 5 * time.Minute
)

// ResponseCache stores API responses in Valkey. A nil *ResponseCache is
// valid and caches nothing, so callers need no Valkey-specific branches.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Key builds the cache key for a request URI under an entity prefix.
func Key(entity, requestURI string) string {
	return entity + ":" + requestURI
}

// Get retrieves a cached response body. Returns false on miss.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores a response body under key with the configured TTL.
func (c *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, responseKeyPrefix+key, body, c.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes every cached response for entity.
func (c *ResponseCache) Invalidate(ctx context.Context, entity string) {
	if c == nil {
		return
	}
	c.deleteMatching(ctx, responseKeyPrefix+entity+":*")
}

// InvalidateAll removes all cached responses.
func (c *ResponseCache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	c.deleteMatching(ctx, responseKeyPrefix+"*")
}

func (c *ResponseCache) deleteMatching(ctx context.Context, pattern string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("response cache invalidated", "pattern", pattern, "deleted", deleted)
	}
}

// Middleware serves GET requests for entity from the cache and stores
// successful responses. Requests carrying a session cookie bypass the
// cache so admins always see fresh data.
func (c *ResponseCache) Middleware(entity string, bypassCookie string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if c == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}
			if _, err := r.Cookie(bypassCookie); err == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := Key(entity, r.URL.RequestURI())
			if body, ok := c.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(body)
				return
			}

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)
			if rec.status == http.StatusOK {
				c.Set(r.Context(), key, rec.body.Bytes())
			}
		})
	}
}

// recorder tees the response body so it can be cached after the handler
// has written it.
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
