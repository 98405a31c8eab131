// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Backend is a key-value store with per-key expiry.
type Backend interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get reports ok=false when the key is absent or expired.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Delete(ctx context.Context, key string) error
}

// ValkeyBackend stores sessions in Valkey.
type ValkeyBackend struct {
	client *redis.Client
}

// NewValkeyBackend wraps a connected Valkey client.
func NewValkeyBackend(client *redis.Client) *ValkeyBackend {
	return &ValkeyBackend{client: client}
}

func (b *ValkeyBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.client.Set(ctx, key, value, ttl).Err()
}

func (b *ValkeyBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (b *ValkeyBackend) Delete(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

// MemoryBackend keeps sessions in process memory. Sessions do not survive
// a restart; it is meant for development and tests.
type MemoryBackend struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

// memorySweepInterval bounds how often Set scans for expired entries.
const memorySweepInterval = time.Minute

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]memoryEntry), now: time.Now}
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	if now.Sub(b.lastSweep) >= memorySweepInterval {
		b.sweep(now)
	}
	b.entries[key] = memoryEntry{value: append([]byte(nil), value...), expires: now.Add(ttl)}
	return nil
}

// sweep drops expired entries. Callers hold b.mu.
func (b *MemoryBackend) sweep(now time.Time) {
	for k, e := range b.entries {
		if !now.Before(e.expires) {
			delete(b.entries, k)
		}
	}
	b.lastSweep = now
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !b.now().Before(e.expires) {
		delete(b.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
	return nil
}
