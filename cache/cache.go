// Package cache implements a capacity-bounded LRU cache with a
// synchronous load callback on miss and an unload callback on eviction,
// plus a head fast-path for the common case of repeated access to the
// same key.
package cache

import (
	"container/list"
	"sync"

	"github.com/aeriksson/blocktable/errs"
)

const op = "cache"

type entry[K comparable, V any] struct {
	key K
	val V
}

// LoadFunc populates a cache miss. Its error, if any, is propagated to
// the caller of Get without altering cache state.
type LoadFunc[K comparable, V any] func(K) (V, error)

// UnloadFunc is called synchronously before an evicted entry's node is
// reused, and once per resident entry (tail-to-head) during Clear.
type UnloadFunc[K comparable, V any] func(K, V)

// Cache is a capacity-bounded LRU keyed by K, caching values of type V.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	load     LoadFunc[K, V]
	unload   UnloadFunc[K, V]

	list  *list.List // front = most recently used
	index map[K]*list.Element

	hasHead bool
	headKey K

	metrics *Metrics
}

// New builds a Cache with the given capacity (must be > 2), load, and
// unload callbacks.
func New[K comparable, V any](capacity int, load LoadFunc[K, V], unload UnloadFunc[K, V], opts ...Option) (*Cache[K, V], error) {
	if capacity <= 2 {
		return nil, errs.New(errs.InvalidArgument, op+".New", "capacity must be greater than 2")
	}

	c := &Cache[K, V]{
		capacity: capacity,
		load:     load,
		unload:   unload,
		list:     list.New(),
		index:    make(map[K]*list.Element, capacity),
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	c.metrics = cfg.metrics
	return c, nil
}

// Option configures optional Cache behavior.
type Option func(*config)

type config struct {
	metrics *Metrics
}

// WithMetrics registers prometheus counters the cache increments on
// hit/miss/eviction. Pass nil (the default) to disable metrics entirely.
func WithMetrics(m *Metrics) Option {
	return func(cfg *config) { cfg.metrics = m }
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}

// HasKey reports whether key is currently resident, without affecting
// recency order.
func (c *Cache[K, V]) HasKey(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasHead && c.headKey == key {
		return true
	}
	_, ok := c.index[key]
	return ok
}

// Get returns the value for key, loading it on a miss. A freshly
// retrieved or loaded key always becomes the new head (most recently
// used).
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.Lock()

	if c.hasHead && c.headKey == key {
		val := c.list.Front().Value.(*entry[K, V]).val
		c.mu.Unlock()
		c.hit()
		return val, nil
	}

	if el, ok := c.index[key]; ok {
		c.list.MoveToFront(el)
		c.headKey = key
		c.hasHead = true
		val := el.Value.(*entry[K, V]).val
		c.mu.Unlock()
		c.hit()
		return val, nil
	}

	// Miss: load outside the lock so a slow/blocking loader does not
	// stall other cache users, matching the synchronous-but-uncontended
	// single-table usage this cache is built for (see pagedtable.Table).
	c.mu.Unlock()
	c.miss()

	val, err := c.load(key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have raced us to load the same key; prefer
	// its result and drop ours to preserve the at-most-one-resident-entry
	// invariant. In the single-flight usage this package is built for
	// (pagedtable.Table) this branch is unreachable, but the cache itself
	// must not assume single-threaded callers.
	if el, ok := c.index[key]; ok {
		c.list.MoveToFront(el)
		c.headKey = key
		c.hasHead = true
		return el.Value.(*entry[K, V]).val, nil
	}

	if c.list.Len() >= c.capacity {
		tail := c.list.Back()
		tailEntry := tail.Value.(*entry[K, V])
		c.list.Remove(tail)
		delete(c.index, tailEntry.key)
		c.mu.Unlock()
		c.unload(tailEntry.key, tailEntry.val)
		c.evicted()
		c.mu.Lock()
	}

	el := c.list.PushFront(&entry[K, V]{key: key, val: val})
	c.index[key] = el
	c.headKey = key
	c.hasHead = true

	return val, nil
}

// Clear evicts every resident entry, calling unload once per entry from
// tail to head, and resets the cache to empty.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	var toUnload []entry[K, V]
	for el := c.list.Back(); el != nil; el = el.Prev() {
		toUnload = append(toUnload, *el.Value.(*entry[K, V]))
	}
	c.list.Init()
	c.index = make(map[K]*list.Element, c.capacity)
	c.hasHead = false
	var zeroKey K
	c.headKey = zeroKey
	c.mu.Unlock()

	for _, e := range toUnload {
		c.unload(e.key, e.val)
	}
}

func (c *Cache[K, V]) hit() {
	if c.metrics != nil {
		c.metrics.Hits.Inc()
	}
}

func (c *Cache[K, V]) miss() {
	if c.metrics != nil {
		c.metrics.Misses.Inc()
	}
}

func (c *Cache[K, V]) evicted() {
	if c.metrics != nil {
		c.metrics.Evictions.Inc()
	}
}
