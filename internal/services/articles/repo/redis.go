package repo

import (
	"context"
	"time"

	"articlestats/internal/platform/store"
	"articlestats/internal/services/articles/domain"
)

// KeyPrefix namespaces cached texts in redis
const KeyPrefix = "articlestats:text:"

// Cache keeps extracted texts in a key value store keyed by a hash of the url
type Cache struct {
	kv store.KV
}

// NewCache wraps kv; a nil kv gives a cache that always misses
func NewCache(kv store.KV) *Cache { return &Cache{kv: kv} }

// Key returns the cache key for url
func Key(url string) string { return KeyPrefix + domain.HashID(url) }

// Get returns the cached text for url
func (c *Cache) Get(ctx context.Context, url string) (string, bool, error) {
	if c == nil || c.kv == nil {
		return "", false, nil
	}
	return c.kv.Get(ctx, Key(url))
}

// Put stores text for url with ttl
func (c *Cache) Put(ctx context.Context, url, text string, ttl time.Duration) error {
	if c == nil || c.kv == nil {
		return nil
	}
	return c.kv.Set(ctx, Key(url), text, ttl)
}
