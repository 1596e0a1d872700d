// Package cache provides a small disk-backed key-value store with TTL
// expiry. The viewer uses it to keep the last remote catalog payload so
// a warm cache can serve the gallery when the endpoint is unreachable.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// entryMeta is the JSON sidecar persisted next to each payload file.
type entryMeta struct {
	Key     string `json:"key"`
	Created int64  `json:"created"` // UnixNano
	TTLNS   int64  `json:"ttl_ns"`  // 0 = never expires
}

// Stats is a snapshot of store counters.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// Store persists entries as {hash}.cache (payload) and {hash}.meta
// (JSON sidecar) under a single directory. Writes are atomic via
// temp-file-then-rename. Safe for concurrent use.
type Store struct {
	dir        string
	defaultTTL time.Duration

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewStore opens (creating if needed) a store rooted at dir. Entries
// written with Put expire after defaultTTL; a zero defaultTTL means
// they never expire by time.
func NewStore(dir string, defaultTTL time.Duration) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache: empty directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", dir, err)
	}
	return &Store{dir: dir, defaultTTL: defaultTTL}, nil
}

// Get returns the payload stored under key, or false if the key is
// missing or expired. Expired entries are removed on access.
func (s *Store) Get(key string) ([]byte, bool) {
	h := hashKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.readMeta(h)
	if err != nil {
		s.misses++
		return nil, false
	}
	if isExpired(meta) {
		s.removeLocked(h)
		s.misses++
		return nil, false
	}

	data, err := os.ReadFile(s.dataPath(h))
	if err != nil {
		s.misses++
		return nil, false
	}

	s.hits++
	return data, true
}

// GetStale returns the payload stored under key even when its TTL has
// lapsed, reporting freshness separately. Unlike Get it never removes
// the entry, so a caller can fall back to stale data after a failed
// refresh.
func (s *Store) GetStale(key string) (data []byte, fresh bool, ok bool) {
	h := hashKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.readMeta(h)
	if err != nil {
		s.misses++
		return nil, false, false
	}
	data, err = os.ReadFile(s.dataPath(h))
	if err != nil {
		s.misses++
		return nil, false, false
	}

	s.hits++
	return data, !isExpired(meta), true
}

// Put stores value under key with the store's default TTL.
func (s *Store) Put(key string, value []byte) error {
	return s.PutWithTTL(key, value, s.defaultTTL)
}

// PutWithTTL stores value under key. A zero ttl means the entry never
// expires by time.
func (s *Store) PutWithTTL(key string, value []byte, ttl time.Duration) error {
	h := hashKey(key)

	meta := entryMeta{
		Key:     key,
		Created: time.Now().UnixNano(),
		TTLNS:   int64(ttl),
	}
	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("cache: marshal meta for %q: %w", key, err)
	}

	if err := atomicWrite(s.dataPath(h), value, s.dir); err != nil {
		return fmt.Errorf("cache: write data for %q: %w", key, err)
	}
	if err := atomicWrite(s.metaPath(h), metaBytes, s.dir); err != nil {
		_ = os.Remove(s.dataPath(h))
		return fmt.Errorf("cache: write meta for %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry stored under key, if any.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(hashKey(key))
}

// Clear removes every entry in the store directory.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cache: clear: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(name, ".cache") || strings.HasSuffix(name, ".meta") || strings.HasPrefix(name, ".tmp-") {
			_ = os.Remove(filepath.Join(s.dir, name))
		}
	}
	return nil
}

// Stats returns hit/miss counters and the number of live entries.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Hits: s.hits, Misses: s.misses}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return st
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".meta") {
			st.Entries++
		}
	}
	return st
}

func (s *Store) dataPath(hash string) string {
	return filepath.Join(s.dir, hash+".cache")
}

func (s *Store) metaPath(hash string) string {
	return filepath.Join(s.dir, hash+".meta")
}

func (s *Store) readMeta(hash string) (entryMeta, error) {
	var m entryMeta
	data, err := os.ReadFile(s.metaPath(hash))
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, err
	}
	return m, nil
}

// removeLocked deletes both files for an entry. Caller holds s.mu.
func (s *Store) removeLocked(hash string) {
	_ = os.Remove(s.dataPath(hash))
	_ = os.Remove(s.metaPath(hash))
}

func isExpired(m entryMeta) bool {
	if m.TTLNS <= 0 {
		return false
	}
	return time.Since(time.Unix(0, m.Created)) > time.Duration(m.TTLNS)
}

// hashKey returns a deterministic, filesystem-safe identifier for key.
func hashKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:8])
}

// atomicWrite writes data to path via a temporary file and rename.
func atomicWrite(path string, data []byte, tmpDir string) error {
	tmp, err := os.CreateTemp(tmpDir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}
