// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// Cacher is the subset of *Cache the snapshot provider depends on.
type Cacher[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Delete(key string)
}

var _ Cacher[struct{}] = (*Cache[struct{}])(nil)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Stats is a point-in-time copy of the cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Cache is a mutex-guarded map whose entries expire after a TTL measured on
// an injectable Clock.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	clock   Clock

	hits        atomic.Int64
	misses      atomic.Int64
	evictions   atomic.Int64
	lastCleanup atomic.Int64 // unix nanos

	stop     chan struct{}
	stopOnce sync.Once
}

type options struct {
	clock           Clock
	cleanupInterval time.Duration
}

// Option configures a Cache.
type Option func(*options)

// WithClock overrides the time source. Defaults to RealClock.
func WithClock(clock Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithCleanupInterval starts a background sweep of expired entries. A
// non-positive interval leaves expiration lazy.
func WithCleanupInterval(interval time.Duration) Option {
	return func(o *options) { o.cleanupInterval = interval }
}

// New returns a cache whose entries live for ttl.
//
//	snapshots := cache.New[catalog.Snapshot](time.Minute, cache.WithCleanupInterval(5*time.Minute))
//	defer snapshots.Close()
func New[V any](ttl time.Duration, opts ...Option) *Cache[V] {
	o := options{clock: RealClock{}}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		clock:   o.clock,
		stop:    make(chan struct{}),
	}
	c.lastCleanup.Store(o.clock.Now().UnixNano())

	if o.cleanupInterval > 0 {
		go c.sweep(o.cleanupInterval)
	}
	return c
}

func (c *Cache[V]) TTL() time.Duration { return c.ttl }

// Get returns the live value for key. An expired entry is dropped and counts
// as a miss and an eviction.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return zero, false
	}

	if !c.clock.Now().Before(e.expiresAt) {
		c.mu.Lock()
		// A concurrent Set may have refreshed the entry since the read.
		if cur, ok := c.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		c.misses.Add(1)
		c.evictions.Add(1)
		return zero, false
	}

	c.hits.Add(1)
	return e.value, true
}

// Set stores value under key for the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	expires := c.clock.Now().Add(ttl)
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: expires}
	c.mu.Unlock()
}

// Delete drops key. Missing keys are not counted as evictions.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if ok {
		c.evictions.Add(1)
	}
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	n := len(c.entries)
	clear(c.entries)
	c.mu.Unlock()

	c.evictions.Add(int64(n))
}

// Cleanup removes expired entries and returns how many it dropped.
func (c *Cache[V]) Cleanup() int {
	now := c.clock.Now()

	c.mu.Lock()
	n := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			n++
		}
	}
	c.mu.Unlock()

	c.evictions.Add(int64(n))
	c.lastCleanup.Store(now.UnixNano())
	return n
}

func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	keys := int64(len(c.entries))
	c.mu.RUnlock()

	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		TotalKeys:   keys,
		LastCleanup: time.Unix(0, c.lastCleanup.Load()),
	}
}

// HitRate is hits as a percentage of lookups, 0 before the first lookup.
func (c *Cache[V]) HitRate() float64 {
	hits, misses := c.hits.Load(), c.misses.Load()
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses) * 100
}

// Close stops the background sweep. Safe to call more than once.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[V]) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.Cleanup()
		case <-c.stop:
			return
		}
	}
}
