// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetDownloadStore() CacheStore
}

// CacheStore defines the interface for cached dataset storage.
// Get returns the stored bytes, the schema version they were written
// with, and the unix timestamp of the write.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
