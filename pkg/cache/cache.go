package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache is the interface shared by the location and invoice caches.
// Entries are advisory: the database and the upstream APIs stay the
// system of record, so a dropped entry only costs an extra fetch.
type Cache interface {
	// Get returns the cached value and true when a fresh entry exists.
	Get(key string) (interface{}, bool)

	// Set stores a value that expires after ttl.
	Set(key string, value interface{}, ttl time.Duration)

	// GetOrSet returns the cached value or computes, stores and returns it.
	// The compute function runs only when the key is absent or expired.
	GetOrSet(key string, ttl time.Duration, compute func() (interface{}, error)) (interface{}, error)

	// Delete removes a single key.
	Delete(key string)

	// DeletePrefix removes every key starting with the given prefix.
	// Used to drop all filter partitions cached for one contact at once.
	DeletePrefix(prefix string)

	// Clear removes everything.
	Clear()

	// Size returns the number of entries, expired ones included.
	Size() int

	// Stop shuts down the background eviction goroutine.
	Stop()
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// MemoryCache is a thread-safe in-memory Cache with periodic eviction.
type MemoryCache struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	stopOnce sync.Once
	stop     chan struct{}
}

// NewMemoryCache creates a memory cache whose expired entries are evicted
// every sweepInterval.
func NewMemoryCache(sweepInterval time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]*entry),
		stop:    make(chan struct{}),
	}

	go c.sweepLoop(sweepInterval)

	return c
}

func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.expired(time.Now()) {
		return nil, false
	}
	return e.value, true
}

func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{value: value, expiresAt: time.Now().Add(ttl)}
}

func (c *MemoryCache) GetOrSet(key string, ttl time.Duration, compute func() (interface{}, error)) (interface{}, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	if ok && !e.expired(time.Now()) {
		c.mu.RUnlock()
		return e.value, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under the write lock: another goroutine may have filled it.
	e, ok = c.entries[key]
	if ok && !e.expired(time.Now()) {
		return e.value, nil
	}

	value, err := compute()
	if err != nil {
		return nil, err
	}

	c.entries[key] = &entry{value: value, expiresAt: time.Now().Add(ttl)}
	return value, nil
}

func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

func (c *MemoryCache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
}

func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *MemoryCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

func (c *MemoryCache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *MemoryCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
		}
	}
}
