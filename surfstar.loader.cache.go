package surfstar

import (
	"context"
	"errors"
	"sync"
	"time"
)

// CachedLoader wraps any SourceLoader with in-memory caching.
// It caches Load results with configurable TTL and size limits.
type CachedLoader struct {
	loader SourceLoader
	config CacheConfig
	now    func() time.Time

	mu    sync.Mutex
	cache map[string]*cacheEntry
	stats CacheStats
}

// CacheConfig configures the caching behavior.
type CacheConfig struct {
	// TTL is how long cached sources remain valid.
	// Default: 5 minutes.
	TTL time.Duration

	// MaxEntries is the maximum number of cached sources.
	// When exceeded, the least recently accessed entry is evicted.
	// Default: 1000.
	MaxEntries int

	// NegativeCacheTTL is how long to cache "not found" results.
	// Set to a negative value to disable negative caching.
	// Default: 30 seconds.
	NegativeCacheTTL time.Duration
}

// DefaultCacheConfig returns the default caching configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:              CacheDefaultTTL,
		MaxEntries:       CacheDefaultMaxEntries,
		NegativeCacheTTL: CacheDefaultNegativeCacheTTL,
	}
}

// CacheStats contains cache statistics.
type CacheStats struct {
	Entries         int
	ValidEntries    int
	NegativeEntries int
	Hits            int
	Misses          int
}

// cacheEntry represents a cached source.
type cacheEntry struct {
	source     string
	notFound   error
	cachedAt   time.Time
	accessedAt time.Time
}

// NewCachedLoader wraps a loader with caching.
func NewCachedLoader(loader SourceLoader, config CacheConfig) *CachedLoader {
	if config.TTL == 0 {
		config.TTL = CacheDefaultTTL
	}
	if config.MaxEntries == 0 {
		config.MaxEntries = CacheDefaultMaxEntries
	}
	if config.NegativeCacheTTL == 0 {
		config.NegativeCacheTTL = CacheDefaultNegativeCacheTTL
	}

	return &CachedLoader{
		loader: loader,
		config: config,
		now:    time.Now,
		cache:  make(map[string]*cacheEntry),
	}
}

// Load returns the cached source for path, loading it on a miss.
// Only not-found failures are cached; other errors pass straight through.
func (c *CachedLoader) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	if entry, ok := c.cache[path]; ok && c.isValid(entry) {
		entry.accessedAt = c.now()
		c.stats.Hits++
		c.mu.Unlock()

		if entry.notFound != nil {
			return "", entry.notFound
		}
		return entry.source, nil
	}
	c.stats.Misses++
	c.mu.Unlock()

	source, err := c.loader.Load(ctx, path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if c.config.NegativeCacheTTL > 0 && errors.Is(err, ErrTemplateNotFound) {
			c.addEntry(path, "", err)
		}
		return "", err
	}

	c.addEntry(path, source, nil)
	return source, nil
}

// Invalidate removes a path from the cache.
func (c *CachedLoader) Invalidate(path string) {
	c.mu.Lock()
	delete(c.cache, path)
	c.mu.Unlock()
}

// InvalidateAll clears the entire cache.
func (c *CachedLoader) InvalidateAll() {
	c.mu.Lock()
	c.cache = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// Stats returns cache statistics.
func (c *CachedLoader) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.stats
	stats.Entries = len(c.cache)
	for _, entry := range c.cache {
		if !c.isValid(entry) {
			continue
		}
		if entry.notFound != nil {
			stats.NegativeEntries++
		} else {
			stats.ValidEntries++
		}
	}
	return stats
}

// isValid checks if a cache entry is still valid.
func (c *CachedLoader) isValid(entry *cacheEntry) bool {
	ttl := c.config.TTL
	if entry.notFound != nil {
		ttl = c.config.NegativeCacheTTL
	}
	return c.now().Sub(entry.cachedAt) < ttl
}

// addEntry adds an entry to the cache, evicting if necessary.
// Caller must hold the lock.
func (c *CachedLoader) addEntry(path, source string, notFound error) {
	if _, exists := c.cache[path]; !exists && len(c.cache) >= c.config.MaxEntries {
		c.evictOldest()
	}

	now := c.now()
	c.cache[path] = &cacheEntry{
		source:     source,
		notFound:   notFound,
		cachedAt:   now,
		accessedAt: now,
	}
}

// evictOldest removes the least recently accessed entry.
// Caller must hold the lock.
func (c *CachedLoader) evictOldest() {
	var (
		oldestPath string
		oldest     *cacheEntry
	)
	for path, entry := range c.cache {
		if oldest == nil || entry.accessedAt.Before(oldest.accessedAt) {
			oldestPath, oldest = path, entry
		}
	}
	if oldest != nil {
		delete(c.cache, oldestPath)
	}
}
