package repository

import "time"

// CacheRepository is the read-through cache collaborator. Implementations
// are injected into services; there is no package-level cache.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
	DeleteByPrefix(prefix string) error
}
