// Package cache defines the contract of the in-memory session cache.
package cache

// Cache is a string-keyed cache of live values.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	GetOrCreate(key string, create func() V) (V, bool)
	Invalidate(key string)
	Len() int
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[V any] interface {
	Cache[V]
	Metrics() Metrics
}
