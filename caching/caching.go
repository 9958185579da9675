// Package caching provides an in-memory cache for hot catalog reads.
package caching

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

var memoryCache = cache.New(defaultExpiration, cleanupInterval)

func Get(key string) (any, bool) {
	return memoryCache.Get(key)
}

func Set(key string, value any) {
	memoryCache.Set(key, value, cache.DefaultExpiration)
}

func SetWithTTL(key string, value any, ttl time.Duration) {
	memoryCache.Set(key, value, ttl)
}

func Delete(key string) {
	memoryCache.Delete(key)
}

// Flush drops every cached entry. Mutations of cached data call this
// instead of tracking individual keys.
func Flush() {
	memoryCache.Flush()
}
