package service

import (
	"container/list"
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/metrics"
	"github.com/dklebine/productioncalculator/internal/service/cache"
)

const (
	memoryBackend  = "memory"
	defaultShards  = 16
	cleanupEvery   = time.Minute
	cleanupPercent = 80
)

// ShardedCache spreads entries over several LRU shards to reduce lock contention.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask uint32
}

// NewShardedCache creates a sharded cache. numShards is rounded up to a power of two.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = defaultShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, n)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}
	return &ShardedCache{shards: shards, shardMask: uint32(n - 1)}
}

func (sc *ShardedCache) shard(key string) *ttlCache {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a value from the owning shard.
func (sc *ShardedCache) Get(ctx context.Context, key string) (model.QuoteResult, bool) {
	return sc.shard(key).Get(ctx, key)
}

// Set stores a value in the owning shard.
func (sc *ShardedCache) Set(ctx context.Context, key string, value model.QuoteResult) {
	sc.shard(key).Set(ctx, key, value)
}

// Invalidate removes a key from the owning shard.
func (sc *ShardedCache) Invalidate(ctx context.Context, key string) {
	sc.shard(key).Invalidate(ctx, key)
}

// Clear empties every shard.
func (sc *ShardedCache) Clear(ctx context.Context) {
	for _, s := range sc.shards {
		s.Clear(ctx)
	}
}

// Stop shuts down the cleanup goroutine of every shard.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics sums the metrics of all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache whose entries also expire after ttl.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	order    *list.List // front is most recently used
	stopCh   chan struct{}
	stopOnce sync.Once

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type cacheEntry struct {
	key       string
	value     model.QuoteResult
	expiresAt time.Time
}

func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Stop terminates the background cleanup. It is safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns a snapshot of the cache counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

// Get returns an unexpired entry and marks it as recently used.
func (c *ttlCache) Get(_ context.Context, key string) (model.QuoteResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation(memoryBackend, "get", "miss")
		return model.QuoteResult{}, false
	}

	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(el)
		c.misses.Add(1)
		metrics.RecordCacheOperation(memoryBackend, "get", "expired")
		return model.QuoteResult{}, false
	}

	c.order.MoveToFront(el)
	c.hits.Add(1)
	metrics.RecordCacheOperation(memoryBackend, "get", "hit")
	return entry.value, true
}

// Set adds or refreshes an entry, evicting the least recently used one when full.
func (c *ttlCache) Set(_ context.Context, key string, value model.QuoteResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, value: value, expiresAt: expiresAt})

	if len(c.items) > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
			c.evictions.Add(1)
			metrics.RecordCacheOperation(memoryBackend, "evict", "capacity")
		}
	}
	metrics.RecordCacheOperation(memoryBackend, "set", "success")
}

// Invalidate removes a single key.
func (c *ttlCache) Invalidate(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
		metrics.RecordCacheOperation(memoryBackend, "invalidate", "success")
	}
}

// Clear drops every entry and resets the counters.
func (c *ttlCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	metrics.RecordCacheOperation(memoryBackend, "clear", "success")
}

func (c *ttlCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*cacheEntry).key)
}

// cleanupLoop sweeps expired entries once the cache is mostly full.
func (c *ttlCache) cleanupLoop() {
	ticker := time.NewTicker(cleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			if len(c.items) > c.capacity*cleanupPercent/100 {
				c.removeExpired(time.Now())
			}
			c.mu.Unlock()
		case <-c.stopCh:
			return
		}
	}
}

// removeExpired must be called with mu held.
func (c *ttlCache) removeExpired(now time.Time) {
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}
