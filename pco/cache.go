package pco

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores raw GET response bodies. Keys combine the credentials,
// API version and URL of the request.
type Cache interface {
	Get(key string) []byte
	Put(key string, data []byte) error
	Clear() error
}

// DiskCache is a Cache backed by one file per key.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a cache in the given directory. Entries older than
// ttl are ignored.
func NewDiskCache(dir string, ttl time.Duration) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}
	return &DiskCache{dir: dir, ttl: ttl}, nil
}

func (c *DiskCache) cacheFile(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", hash[:8]))
}

// Get returns cached data if fresh, or nil if stale/missing.
func (c *DiskCache) Get(key string) []byte {
	path := c.cacheFile(key)
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return data
}

// Put stores data in the cache.
func (c *DiskCache) Put(key string, data []byte) error {
	return os.WriteFile(c.cacheFile(key), data, 0o600)
}

// Clear removes every cached entry.
func (c *DiskCache) Clear() error {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
