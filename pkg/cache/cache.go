// Copyright (c) 2025, Lyric Atlas authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// EvictCallback is invoked when an entry is removed by expiration, Delete,
// or Clear. Callbacks run outside the cache lock.
type EvictCallback[V any] func(key string, value V)

// Option configures a TTLCache.
type Option[V any] func(*TTLCache[V])

// WithEvictCallback registers a callback invoked for every evicted entry.
func WithEvictCallback[V any](fn EvictCallback[V]) Option[V] {
	return func(c *TTLCache[V]) {
		c.evictFn = fn
	}
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

func (e *entry[V]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// TTLCache is a thread-safe cache whose entries expire after a fixed TTL.
// Expired entries are dropped lazily on Get and in bulk by the janitor
// started with StartJanitor.
type TTLCache[V any] struct {
	name            string
	ttl             time.Duration
	cleanupInterval time.Duration

	mu    sync.RWMutex
	items map[string]*entry[V]

	evictFn EvictCallback[V]
	stats   *counters

	janitorOnce sync.Once
}

// New creates a TTLCache. The name labels the cache in metrics and logs.
// Entries live for ttl; the janitor sweeps every cleanupInterval once
// StartJanitor is called.
func New[V any](name string, ttl, cleanupInterval time.Duration, opts ...Option[V]) *TTLCache[V] {
	c := &TTLCache[V]{
		name:            name,
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		items:           make(map[string]*entry[V]),
		stats:           &counters{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get retrieves a value by key. Expired entries are removed and reported
// as misses.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	now := time.Now()

	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		c.stats.miss()
		recordMiss(c.name)
		return zero, false
	}

	if e.expired(now) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// replaced the entry in the meantime.
		if cur, still := c.items[key]; still && cur.expired(now) {
			delete(c.items, key)
			c.stats.eviction()
			recordEviction(c.name)
			updateSize(c.name, len(c.items))
			if c.evictFn != nil {
				defer c.evictFn(key, cur.value)
			}
		}
		c.mu.Unlock()

		var zero V
		c.stats.miss()
		recordMiss(c.name)
		return zero, false
	}

	c.stats.hit()
	recordHit(c.name)
	return e.value, true
}

// Set stores a value under key, resetting its expiration.
// Returns true when the key was not previously present.
func (c *TTLCache[V]) Set(key string, value V) bool {
	expiresAt := time.Now().Add(c.ttl)

	c.mu.Lock()
	_, existed := c.items[key]
	c.items[key] = &entry[V]{key: key, value: value, expiresAt: expiresAt}
	size := len(c.items)
	c.mu.Unlock()

	c.stats.set()
	updateSize(c.name, size)
	return !existed
}

// Delete removes an entry by key. Returns true when an entry was removed.
func (c *TTLCache[V]) Delete(key string) bool {
	c.mu.Lock()
	e, ok := c.items[key]
	if ok {
		delete(c.items, key)
		if c.evictFn != nil {
			defer c.evictFn(key, e.value)
		}
	}
	size := len(c.items)
	c.mu.Unlock()

	if ok {
		updateSize(c.name, size)
	}
	return ok
}

// Clear removes all entries.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	evicted := c.items
	c.items = make(map[string]*entry[V])
	c.mu.Unlock()

	if c.evictFn != nil {
		for _, e := range evicted {
			c.evictFn(e.key, e.value)
		}
	}
	updateSize(c.name, 0)
}

// Size returns the current number of entries, expired or not.
func (c *TTLCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Keys returns the keys of all live entries.
func (c *TTLCache[V]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	keys := make([]string, 0, len(c.items))
	for key, e := range c.items {
		if !e.expired(now) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Stats returns a snapshot of the cache counters.
func (c *TTLCache[V]) Stats() Stats {
	s := c.stats.snapshot()
	s.Entries = int64(c.Size())
	return s
}

// StartJanitor launches the background sweep goroutine. It is safe to call
// more than once; only the first call starts the janitor. The janitor stops
// when ctx is canceled.
func (c *TTLCache[V]) StartJanitor(ctx context.Context) {
	c.janitorOnce.Do(func() {
		slog.Debug("cache janitor started",
			"cache", c.name,
			"ttl", c.ttl,
			"interval", c.cleanupInterval)
		go c.janitor(ctx)
	})
}

func (c *TTLCache[V]) janitor(ctx context.Context) {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("cache janitor stopped", "cache", c.name)
			return
		case <-ticker.C:
			if removed := c.RemoveExpired(); removed > 0 {
				slog.Debug("cache sweep removed expired entries",
					"cache", c.name,
					"removed", removed)
			}
		}
	}
}

// RemoveExpired drops all expired entries and returns how many were removed.
func (c *TTLCache[V]) RemoveExpired() int {
	now := time.Now()
	var expired []*entry[V]

	c.mu.Lock()
	for key, e := range c.items {
		if e.expired(now) {
			expired = append(expired, e)
			delete(c.items, key)
		}
	}
	size := len(c.items)
	c.mu.Unlock()

	if c.evictFn != nil {
		for _, e := range expired {
			c.evictFn(e.key, e.value)
		}
	}

	if len(expired) > 0 {
		for range expired {
			c.stats.eviction()
			recordEviction(c.name)
		}
		updateSize(c.name, size)
	}

	return len(expired)
}
