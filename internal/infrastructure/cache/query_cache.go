// Package cache holds the advisory query cache for filtered statement lists.
package cache

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// QueryCache caches query results per resource kind. Invalidating a kind
// moves it to a new generation, so results computed before the
// invalidation can never be served after it. A nil *QueryCache is a valid,
// disabled cache.
type QueryCache struct {
	store  *gocache.Cache
	logger *zap.Logger

	mu          sync.Mutex
	generations map[string]uint64

	hits   int64
	misses int64
}

// Stats reports cache effectiveness
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// QueryCacheOption configures a QueryCache
type QueryCacheOption func(*QueryCache)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) QueryCacheOption {
	return func(c *QueryCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewQueryCache creates a cache whose entries expire after ttl and are
// purged every cleanupInterval
func NewQueryCache(ttl, cleanupInterval time.Duration, opts ...QueryCacheOption) *QueryCache {
	c := &QueryCache{
		store:       gocache.New(ttl, cleanupInterval),
		logger:      zap.NewNop(),
		generations: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generation returns the current generation of kind. Pass it to Set so a
// result computed before an invalidation is stored under a dead key.
func (c *QueryCache) Generation(kind string) uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[kind]
}

// Get returns the cached value for key in the current generation of kind
func (c *QueryCache) Get(kind, key string) (interface{}, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.store.Get(c.entryKey(kind, c.Generation(kind), key))
	if ok {
		atomic.AddInt64(&c.hits, 1)
		c.logger.Debug("query cache hit", zap.String("kind", kind), zap.String("key", key))
		return v, true
	}
	atomic.AddInt64(&c.misses, 1)
	c.logger.Debug("query cache miss", zap.String("kind", kind), zap.String("key", key))
	return nil, false
}

// Set stores v for key under generation gen of kind
func (c *QueryCache) Set(kind string, gen uint64, key string, v interface{}) {
	if c == nil {
		return
	}
	c.store.SetDefault(c.entryKey(kind, gen, key), v)
}

// Invalidate drops every entry of kind
func (c *QueryCache) Invalidate(kind string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.generations[kind]++
	c.mu.Unlock()

	prefix := kind + "|"
	removed := 0
	for k := range c.store.Items() {
		if strings.HasPrefix(k, prefix) {
			c.store.Delete(k)
			removed++
		}
	}
	c.logger.Debug("query cache invalidated", zap.String("kind", kind), zap.Int("removed", removed))
}

// Stats returns hit and miss counters and the live entry count
func (c *QueryCache) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		Hits:    atomic.LoadInt64(&c.hits),
		Misses:  atomic.LoadInt64(&c.misses),
		Entries: c.store.ItemCount(),
	}
}

func (c *QueryCache) entryKey(kind string, gen uint64, key string) string {
	return kind + "|" + strconv.FormatUint(gen, 10) + "|" + key
}
