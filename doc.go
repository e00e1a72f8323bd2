// Package memocache provides a small, generic, fixed-capacity in-memory
// cache with FIFO eviction, intended for memoizing pure function results
// under bounded memory.
//
// # Architecture
//
// The cache is a flat slot array allocated once at construction, plus a
// write cursor. Each slot is either empty or holds one key/value pair.
// Lookups are a linear scan over the slots comparing keys; there is no
// hashing and no ordering index. Linear scan sounds slow, but for the small
// capacities this cache targets (up to roughly 100-150 entries) it is
// competitive with a hash map and far more predictable: no rehashing, no
// growth, no per-operation allocation.
//
// # Eviction
//
// When an insert lands on an occupied slot, that slot's occupant is
// discarded and replaced, and the cursor advances to the next slot. The
// cursor sweeps the array in order and wraps, so entries are evicted
// strictly in the order they were first written (FIFO). Access patterns do
// not matter: an entry read on every call is still evicted once the cursor
// comes back around. Inserting an existing key updates its value in place
// and moves nothing. There is no time-based expiration and no explicit
// delete; entries leave only by eviction or [Cache.Reset].
//
// # Memoization
//
// [Cache.GetOrCompute] and [Cache.GetOrTryCompute] look up a key and invoke
// the supplied function only on a miss, caching its result. [Memoize] and
// [MemoizeErr] wrap a function directly:
//
//	fib := memocache.Memoize(64, slowFib)
//	fib(40) // computed
//	fib(40) // cached
//
// # Persistence
//
// A cache can be saved with [Cache.SaveToFile] and restored with
// [LoadFromFile] using gob encoding with minlz compression. Snapshots
// preserve slot order and the cursor, so FIFO age survives a round trip.
//
// # Concurrency
//
// The cache does no locking and is not safe for concurrent use. All
// operations are synchronous and complete in bounded time. Callers that
// share a cache across goroutines must provide their own synchronization;
// mutating calls require exclusive access, and reads are safe to share only
// while no mutation is in flight.
package memocache
