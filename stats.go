package memocache

// Stats represents cache stats.
//
// Use [Cache.UpdateStats] for obtaining fresh stats from the cache.
type Stats struct {
	// GetCalls is the number of Get, GetPtr and Has calls, plus lookups
	// that hit in the GetOr* methods.
	GetCalls uint64

	// SetCalls is the number of Set calls, plus stores performed by the
	// GetOr* methods.
	SetCalls uint64

	// Misses is the number of cache misses.
	Misses uint64

	// Hits is the number of cache hits.
	Hits uint64

	// Evictions is the number of entries discarded because an insert
	// landed on their slot.
	Evictions uint64

	// EntriesCount is the current number of occupied slots in the cache.
	EntriesCount uint64

	// Capacity is the fixed number of slots in the cache.
	Capacity uint64
}

// UpdateStats adds cache stats to s.
//
// Call [Stats.Reset] before calling UpdateStats if s is re-used.
func (c *Cache[K, V]) UpdateStats(s *Stats) {
	s.GetCalls += c.getCalls
	s.SetCalls += c.setCalls
	s.Misses += c.misses
	s.Evictions += c.evictions
	s.Hits = s.GetCalls - s.Misses
	s.EntriesCount = uint64(c.used)
	s.Capacity = uint64(len(c.slots))
}

// Reset resets s, so it may be re-used again in [Cache.UpdateStats].
func (s *Stats) Reset() {
	*s = Stats{}
}
