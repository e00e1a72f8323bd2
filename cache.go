package memocache

import (
	"fmt"
	"iter"
)

// Cache is a fixed-capacity in-memory cache with FIFO eviction.
//
// Storage is a slot array allocated once by [New] and never resized.
// Lookups scan the array linearly; inserts write at the cursor position and
// advance it, overwriting the oldest-written entry once the cache is full.
//
// A Cache is not safe for concurrent use; see the package documentation.
type Cache[K comparable, V any] struct {
	slots  []slot[K, V]
	cursor int // next slot to write on insert
	used   int // occupied slot count

	// stats (hits computed as getCalls - misses)
	getCalls  uint64
	setCalls  uint64
	misses    uint64
	evictions uint64
}

// slot holds a key/value pair and whether it's occupied.
type slot[K comparable, V any] struct {
	key   K
	value V
	used  bool
}

// New returns a new cache with the given fixed capacity.
//
// capacity is the number of slots the cache holds for its whole lifetime.
// When all slots are occupied, each insert of a new key evicts the
// oldest-written entry (FIFO).
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		panic(fmt.Errorf("capacity must be greater than 0; got %d", capacity))
	}

	return &Cache[K, V]{
		slots: make([]slot[K, V], capacity),
	}
}

// lookup returns the slot index holding k, or -1.
func (c *Cache[K, V]) lookup(k K) int {
	for i := range c.slots {
		if c.slots[i].used && c.slots[i].key == k {
			return i
		}
	}

	return -1
}

// store writes (k, v) at the cursor, evicting any occupant, and advances
// the cursor. k must not already be in the cache.
func (c *Cache[K, V]) store(k K, v V) {
	s := &c.slots[c.cursor]
	if s.used {
		c.evictions++
	} else {
		c.used++
	}
	s.key = k
	s.value = v
	s.used = true

	c.cursor = (c.cursor + 1) % len(c.slots)
}

// Set stores (k, v) in the cache.
//
// If k is already present its value is replaced in place; the slot keeps
// its position in the eviction order and the cursor does not move.
// Otherwise the pair is written at the cursor, evicting that slot's
// occupant if there is one. The evicted pair is discarded, not returned;
// eviction counts are available through [Cache.UpdateStats].
func (c *Cache[K, V]) Set(k K, v V) {
	c.setCalls++

	if i := c.lookup(k); i >= 0 {
		c.slots[i].value = v

		return
	}

	c.store(k, v)
}

// Get returns the value for the given key.
//
// Returns the zero value and false if the key is not found. Get is
// read-only: it does not move the cursor or affect eviction order.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.getCalls++

	if i := c.lookup(k); i >= 0 {
		return c.slots[i].value, true
	}
	c.misses++

	var zero V

	return zero, false
}

// GetPtr returns a pointer to the stored value for the given key, allowing
// in-place mutation without reinserting. Returns nil if the key is not
// found.
//
// The pointer aims into the slot array: it stays valid until the entry is
// evicted or the cache is reset, and must not be held across inserts by
// callers that cannot rule out eviction of this entry.
func (c *Cache[K, V]) GetPtr(k K) *V {
	c.getCalls++

	if i := c.lookup(k); i >= 0 {
		return &c.slots[i].value
	}
	c.misses++

	return nil
}

// Has returns true if an entry for the given key exists in the cache.
func (c *Cache[K, V]) Has(k K) bool {
	_, ok := c.Get(k)

	return ok
}

// GetOrSet returns the existing value for the key if present.
// Otherwise, it stores and returns the given value.
//
// The loaded result is true if the value was loaded, false if stored.
func (c *Cache[K, V]) GetOrSet(k K, v V) (actual V, loaded bool) {
	if i := c.lookup(k); i >= 0 {
		c.getCalls++

		return c.slots[i].value, true
	}

	c.setCalls++
	c.store(k, v)

	return v, false
}

// GetOrCompute returns the existing value for the key if present.
// Otherwise, it invokes fn with the key, stores the result, and returns it.
//
// fn is invoked at most once per call and never when the key is present.
// Storing may evict the entry at the cursor exactly as [Cache.Set] would.
//
// The loaded result is true if the value was loaded, false if computed and
// stored.
func (c *Cache[K, V]) GetOrCompute(k K, fn func(K) V) (actual V, loaded bool) {
	if i := c.lookup(k); i >= 0 {
		c.getCalls++

		return c.slots[i].value, true
	}

	v := fn(k)
	c.setCalls++
	c.store(k, v)

	return v, false
}

// GetOrTryCompute is like [Cache.GetOrCompute] with a fallible fn.
//
// If fn returns an error, the error is returned unmodified and the cache is
// left untouched: no entry is stored, no eviction happens, and the cursor
// does not move. The result is stored only when fn succeeds.
func (c *Cache[K, V]) GetOrTryCompute(k K, fn func(K) (V, error)) (actual V, loaded bool, err error) {
	if i := c.lookup(k); i >= 0 {
		c.getCalls++

		return c.slots[i].value, true, nil
	}

	v, err := fn(k)
	if err != nil {
		var zero V

		return zero, false, err
	}

	c.setCalls++
	c.store(k, v)

	return v, false, nil
}

// Len returns the number of occupied slots in the cache.
func (c *Cache[K, V]) Len() int {
	return c.used
}

// IsFull returns true if every slot in the cache is occupied.
//
// Once full, a cache stays full until [Cache.Reset]; entries are only ever
// replaced, never removed.
func (c *Cache[K, V]) IsFull() bool {
	return c.used == len(c.slots)
}

// Capacity returns the fixed capacity the cache was created with.
func (c *Cache[K, V]) Capacity() int {
	return len(c.slots)
}

// Reset removes all the items from the cache and rewinds the cursor,
// restoring the state produced by [New]. Stats counters are zeroed as well.
func (c *Cache[K, V]) Reset() {
	for i := range c.slots {
		c.slots[i] = slot[K, V]{}
	}
	c.cursor = 0
	c.used = 0
	c.getCalls = 0
	c.setCalls = 0
	c.misses = 0
	c.evictions = 0
}

// All returns an iterator over all key-value pairs in the cache, in slot
// order. Slot order is stable between inserts, but it is not the eviction
// order once the cursor has wrapped.
//
// The cache must not be mutated during iteration.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range c.slots {
			if !c.slots[i].used {
				continue
			}
			if !yield(c.slots[i].key, c.slots[i].value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in the cache, in slot order.
//
// The cache must not be mutated during iteration.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range c.slots {
			if c.slots[i].used && !yield(c.slots[i].key) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in the cache, in slot order.
//
// The cache must not be mutated during iteration.
func (c *Cache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range c.slots {
			if c.slots[i].used && !yield(c.slots[i].value) {
				return
			}
		}
	}
}
