package cache

import (
	"math"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Entry is a cached evaluation: the objective value and its gradient.
type Entry struct {
	Value    float64
	Gradient []float64
}

// ResultCache defines a generic interface for caching evaluations.
type ResultCache interface {
	// Get retrieves an evaluation from the cache.
	Get(key string) (Entry, bool)
	// Put stores an evaluation in the cache.
	Put(key string, e Entry)
	// Size returns the number of items in the cache.
	Size() int
}

// Key builds the cache key of an objective evaluated at point. Points are
// keyed by their exact bit patterns, so 0 and -0 are distinct keys.
func Key(objective string, point []float64) string {
	b := make([]byte, 0, len(objective)+1+17*len(point))
	b = append(b, objective...)
	b = append(b, ':')
	for i, v := range point {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendUint(b, math.Float64bits(v), 16)
	}
	return string(b)
}

// MapCache is a simple in-memory implementation of ResultCache. When
// capacity is positive, the oldest entry is evicted once it is reached.
type MapCache struct {
	data     map[string]Entry
	order    []string
	capacity int
	mu       sync.RWMutex
}

func NewMapCache(capacity int) *MapCache {
	return &MapCache{
		data:     make(map[string]Entry),
		capacity: capacity,
	}
}

func (c *MapCache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Return copy to avoid modification of cached value
	if e, ok := c.data[key]; ok {
		cacheHits.Inc()
		return copyEntry(e), true
	}
	cacheMisses.Inc()
	return Entry{}, false
}

func (c *MapCache) Put(key string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[key]; !ok {
		if c.capacity > 0 && len(c.data) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.data, oldest)
			cacheEvictions.Inc()
		} else {
			cacheEntries.Inc()
		}
		c.order = append(c.order, key)
	}
	c.data[key] = copyEntry(e)
}

func (c *MapCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

func copyEntry(e Entry) Entry {
	dst := make([]float64, len(e.Gradient))
	copy(dst, e.Gradient)
	return Entry{Value: e.Value, Gradient: dst}
}

// ShardedCache spreads keys over several MapCaches by hash so that
// concurrent evaluators rarely contend on one lock.
type ShardedCache struct {
	shards []*MapCache
}

// NewShardedCache splits capacity over n shards. With a capacity below n
// only capacity shards are created, so the cache never holds more than
// capacity entries. A capacity of zero or less is unbounded.
func NewShardedCache(n, capacity int) *ShardedCache {
	if n < 1 {
		n = 1
	}
	if capacity > 0 {
		n = min(n, capacity)
	}
	s := &ShardedCache{shards: make([]*MapCache, n)}
	for i := range s.shards {
		per := 0
		if capacity > 0 {
			per = capacity / n
			if i < capacity%n {
				per++
			}
		}
		s.shards[i] = NewMapCache(per)
	}
	return s
}

func (s *ShardedCache) shard(key string) *MapCache {
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

func (s *ShardedCache) Get(key string) (Entry, bool) {
	return s.shard(key).Get(key)
}

func (s *ShardedCache) Put(key string, e Entry) {
	s.shard(key).Put(key, e)
}

func (s *ShardedCache) Size() int {
	n := 0
	for _, m := range s.shards {
		n += m.Size()
	}
	return n
}

// ensure interface compliance
var (
	_ ResultCache = (*MapCache)(nil)
	_ ResultCache = (*ShardedCache)(nil)
)
