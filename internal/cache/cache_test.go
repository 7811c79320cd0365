package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(filepath.Join(t.TempDir(), "cache"), 24, true)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)

	data := []byte(`{"score": 90}`)
	hash := HashBytes([]byte("source code"))

	if err := c.SetWithHash("key", hash, data); err != nil {
		t.Fatal(err)
	}

	got, ok := c.GetWithHash("key", hash)
	if !ok {
		t.Fatal("entry not found after set")
	}
	if string(got) != string(data) {
		t.Errorf("got %q, want %q", got, data)
	}
}

func TestCacheMissOnWrongHash(t *testing.T) {
	c := newTestCache(t)

	hash := HashBytes([]byte("version one"))
	if err := c.SetWithHash("key", hash, []byte("result")); err != nil {
		t.Fatal(err)
	}

	// The file content changed, so its hash no longer matches the entry.
	newHash := HashBytes([]byte("version two"))
	if _, ok := c.GetWithHash("key", newHash); ok {
		t.Error("stale entry returned for a different content hash")
	}
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	c := newTestCache(t)
	if _, ok := c.GetWithHash("never-set", "hash"); ok {
		t.Error("hit for a key that was never set")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := newTestCache(t)
	c.ttl = -time.Hour // everything is already expired

	hash := HashBytes([]byte("code"))
	if err := c.SetWithHash("key", hash, []byte("result")); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.GetWithHash("key", hash); ok {
		t.Error("expired entry returned")
	}
	// Expired entries are removed on read.
	if _, ok := c.GetWithHash("key", hash); ok {
		t.Error("expired entry still present after eviction")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := newTestCache(t)

	hash := HashBytes([]byte("code"))
	if err := c.SetWithHash("key", hash, []byte("result")); err != nil {
		t.Fatal(err)
	}
	if err := c.Invalidate("key"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.GetWithHash("key", hash); ok {
		t.Error("entry survived invalidation")
	}

	// Invalidating a missing key is not an error.
	if err := c.Invalidate("never-set"); err != nil {
		t.Errorf("Invalidate(missing) = %v", err)
	}
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t)

	hash := HashBytes([]byte("code"))
	for _, key := range []string{"a", "b", "c"} {
		if err := c.SetWithHash(key, hash, []byte("result")); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"a", "b", "c"} {
		if _, ok := c.GetWithHash(key, hash); ok {
			t.Errorf("entry %q survived Clear", key)
		}
	}
}

func TestCacheDisabled(t *testing.T) {
	c, err := New("", 24, false)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.SetWithHash("key", "hash", []byte("result")); err != nil {
		t.Errorf("disabled Set = %v", err)
	}
	if _, ok := c.GetWithHash("key", "hash"); ok {
		t.Error("disabled cache returned a hit")
	}
	if err := c.Invalidate("key"); err != nil {
		t.Errorf("disabled Invalidate = %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Errorf("disabled Clear = %v", err)
	}
}

func TestCacheLazyDirCreation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := New(dir, 24, true)
	if err != nil {
		t.Fatal(err)
	}

	// Construction and reads must not create the directory.
	c.GetWithHash("key", "hash")
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("cache directory created before first write")
	}

	if err := c.SetWithHash("key", "hash", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory missing after write: %v", err)
	}
}

func TestHashBytes(t *testing.T) {
	a := HashBytes([]byte("hello"))
	b := HashBytes([]byte("hello"))
	c := HashBytes([]byte("world"))

	if a != b {
		t.Error("identical content produced different hashes")
	}
	if a == c {
		t.Error("different content produced the same hash")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != HashBytes([]byte("content")) {
		t.Error("HashFile disagrees with HashBytes")
	}

	if _, err := HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("HashFile(missing) should error")
	}
}
