// Package settings provides the persistent key-value store the lab
// controller commits tuned parameters to. The store is injected into each
// lab rather than accessed as a process-wide singleton, so engines stay
// testable in isolation.
package settings

import (
	"encoding/json"
	"os"
)

// Store is the synchronous key-value contract the lab controller persists
// through. Values are numeric; integer settings round-trip as floats.
type Store interface {
	Get(key string, def float64) float64
	Set(key string, value float64)
}

// MemStore is an in-memory Store for tests and headless runs.
type MemStore map[string]float64

// NewMemStore returns an empty in-memory store.
func NewMemStore() MemStore { return MemStore{} }

// Get returns the stored value or def when the key is absent.
func (m MemStore) Get(key string, def float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Set stores the value.
func (m MemStore) Set(key string, value float64) { m[key] = value }

// FileStore persists settings as a flat JSON object. Loading is lazy and
// writing is best-effort: an unreadable or missing file yields defaults and
// a failed write is silently dropped.
type FileStore struct {
	path   string
	values map[string]float64
}

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() {
	if s.values != nil {
		return
	}
	s.values = map[string]float64{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, &s.values)
}

// Get returns the stored value or def when the key is absent.
func (s *FileStore) Get(key string, def float64) float64 {
	s.load()
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Set stores the value and rewrites the backing file.
func (s *FileStore) Set(key string, value float64) {
	s.load()
	s.values[key] = value
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}
