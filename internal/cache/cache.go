// Package cache provides file-based caching of analysis results, keyed by
// content hash so stale entries never survive an edit.
package cache

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// Cache stores serialized analysis results on disk with a TTL.
type Cache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// Entry represents a cached analysis result.
type Entry struct {
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
	Data      []byte    `json:"data"`
}

// New creates a cache rooted at dir. A disabled cache is a no-op on every
// method.
func New(dir string, ttlHours int, enabled bool) (*Cache, error) {
	if !enabled {
		return &Cache{enabled: false}, nil
	}

	return &Cache{
		dir:     dir,
		ttl:     time.Duration(ttlHours) * time.Hour,
		enabled: true,
	}, nil
}

// HashFile computes a BLAKE3 hash of a file's contents.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return HashBytes(data), nil
}

// HashBytes computes a BLAKE3 hash of bytes as a hex string.
func HashBytes(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// GetWithHash retrieves a cached entry only if the content hash matches and
// the entry has not expired.
func (c *Cache) GetWithHash(key, hash string) ([]byte, bool) {
	if !c.enabled {
		return nil, false
	}

	data, err := os.ReadFile(c.keyPath(key))
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.Hash != hash {
		return nil, false
	}
	if time.Since(entry.Timestamp) > c.ttl {
		os.Remove(c.keyPath(key))
		return nil, false
	}

	return entry.Data, true
}

// SetWithHash stores data under key, stamped with the content hash.
func (c *Cache) SetWithHash(key, hash string, data []byte) error {
	if !c.enabled {
		return nil
	}

	entry := Entry{
		Hash:      hash,
		Timestamp: time.Now(),
		Data:      data,
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// The directory is created on first write, not at construction, so a
	// cache that is never written leaves no trace on disk.
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(c.keyPath(key), entryData, 0o600)
}

// Invalidate removes a cache entry.
func (c *Cache) Invalidate(key string) error {
	if !c.enabled {
		return nil
	}
	err := os.Remove(c.keyPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes all cache entries.
func (c *Cache) Clear() error {
	if !c.enabled {
		return nil
	}
	return os.RemoveAll(c.dir)
}

// keyPath converts a key to a filesystem path. xxhash is enough here: the
// key only needs a collision-resistant-in-practice filename, while content
// validation rides on the BLAKE3 hash inside the entry.
func (c *Cache) keyPath(key string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(key)))
}
