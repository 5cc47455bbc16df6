package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface for URL-check results, DOI lookups
// and search responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a namespaced cache key from an arbitrary value
func Key(namespace, value string) string {
	hash := sha256.Sum256([]byte(value))
	return "scrutiny:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
