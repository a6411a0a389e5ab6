// Package memory provides in-memory implementations of the outbound
// persistence ports: catalog, preference store, plan repository and cache.
// They back local development and tests, and serve as the fallback variant
// when the persistent stores are not configured.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mealforge/v1/internal/ports/outbound"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository implements an in-memory cache with TTL expiry
type CacheRepository struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewCacheRepository creates a new in-memory cache repository
func NewCacheRepository() outbound.CacheRepository {
	return &CacheRepository{
		data: make(map[string]cacheItem),
	}
}

// Get retrieves a value from cache
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mutex.RLock()
	item, exists := r.data[key]
	r.mutex.RUnlock()

	if !exists || time.Now().After(item.expiresAt) {
		return nil, ErrCacheMiss
	}
	return item.value, nil
}

// Set stores a value in cache with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.data[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a key from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.data, key)
	return nil
}

// Exists checks whether a key is present and unexpired
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	item, exists := r.data[key]
	if !exists || time.Now().After(item.expiresAt) {
		return false, nil
	}
	return true, nil
}
