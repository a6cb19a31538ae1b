// Package cache provides caching decorators for external capability clients.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/usecase"
)

// CachingSearcher decorates a Searcher with Redis caching.
// Search results for the same query are served from Redis until the TTL expires.
type CachingSearcher struct {
	inner     usecase.Searcher
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.Searcher = (*CachingSearcher)(nil)

// NewCachingSearcher decorates a Searcher with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "sentiment".
func NewCachingSearcher(rdb *redis.Client, ttl time.Duration, inner usecase.Searcher, namespace string) *CachingSearcher {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "sentiment"
	}
	return &CachingSearcher{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search returns cached results when present, otherwise queries the inner searcher.
func (c *CachingSearcher) Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, query, maxResults)
	}

	key := c.cacheKey(query, maxResults)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.SearchResult
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the search provider. Failures are never cached.
	out, err := c.inner.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops every cached entry for query regardless of result size.
func (c *CachingSearcher) Invalidate(ctx context.Context, query string) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.cacheKeyPrefix(query)+"*")
}

// cacheKey generates a cache key for a specific query.
func (c *CachingSearcher) cacheKey(query string, maxResults int) string {
	return fmt.Sprintf("%s%d", c.cacheKeyPrefix(query), maxResults)
}

// cacheKeyPrefix generates a prefix shared by all result sizes of a query.
func (c *CachingSearcher) cacheKeyPrefix(query string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(query))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingSearcher) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys and glob patterns.
func safe(s string) string {
	return strings.NewReplacer(
		" ", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"[", "_",
		"]", "_",
	).Replace(strings.ToLower(s))
}
