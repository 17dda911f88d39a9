// Package storage provides the session-scoped snapshot store that backs the
// tag clipboard across navigations. A missing key means "nothing stored";
// an empty value is never written in its place.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a small synchronous key/value store for serialized snapshots.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	// Delete removes the key entirely. Removing an absent key is not an error.
	Delete(key string) error
}

// FileStore persists one file per key under a session directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// DefaultSessionDir returns the directory used for session snapshots.
func DefaultSessionDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "galleria", "session")
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *FileStore) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove snapshot %s: %w", key, err)
	}
	return nil
}

// MemoryStore is an in-memory Store used in tests and as a fallback when no
// session directory is available.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	// Return a copy to prevent external modification
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
