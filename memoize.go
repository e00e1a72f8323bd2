package memocache

// Memoize wraps fn with a private fixed-capacity cache keyed by its
// argument. fn must be pure: the wrapper returns the cached result for any
// argument still resident in the cache.
//
// The returned function is subject to the same single-writer discipline as
// [Cache] and must not be called concurrently.
func Memoize[K comparable, V any](capacity int, fn func(K) V) func(K) V {
	c := New[K, V](capacity)

	return func(k K) V {
		v, _ := c.GetOrCompute(k, fn)

		return v
	}
}

// MemoizeErr is like [Memoize] for a fallible fn. Errors are returned to
// the caller and never cached; a failed argument is recomputed on the next
// call.
func MemoizeErr[K comparable, V any](capacity int, fn func(K) (V, error)) func(K) (V, error) {
	c := New[K, V](capacity)

	return func(k K) (V, error) {
		v, _, err := c.GetOrTryCompute(k, fn)

		return v, err
	}
}
