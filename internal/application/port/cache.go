package port

// Cache is a generic cache interface for storing key-value pairs.
// Implementations should be thread-safe.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Remove(key K)
	Len() int
}
