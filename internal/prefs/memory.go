package prefs

import "sync"

// memoryStore is the fallback when the database cannot be opened. Values
// live for the process lifetime only; the rest of the app works unchanged.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an in-process Store with no persistence.
func NewMemory() Store {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *memoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
