package daily

import (
	"fmt"
	"sync"

	"github.com/chronox22/eco-gamer-collective/internal/errors"
	"github.com/chronox22/eco-gamer-collective/internal/kv"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
)

// Store is a best-effort façade over a kv.Backend. It never returns an
// error: a failing backend reads as a miss and a failed write is logged.
//
// When a write fails, the value is kept in a process-local overlay so the
// rest of the session sees a stable value for that key. A later successful
// write clears the overlay entry.
type Store struct {
	backend kv.Backend

	mu      sync.Mutex
	overlay map[string]string
}

// NewStore wraps backend. A nil backend behaves as permanently unavailable.
func NewStore(backend kv.Backend) *Store {
	return &Store{
		backend: backend,
		overlay: make(map[string]string),
	}
}

// Read returns the last text written under key. ok is false when the key was
// never written or the backend could not be read.
func (s *Store) Read(key string) (raw string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, held := s.overlay[key]; held {
		return v, true
	}
	if s.backend == nil {
		return "", false
	}

	v, found, err := s.backend.Get(key)
	if err != nil {
		logger.Warn("Snapshot read failed, treating as absent",
			"key", key, "error", fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err))
		return "", false
	}
	return v, found
}

// Write fully replaces the value under key.
func (s *Store) Write(key, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		s.overlay[key] = raw
		return
	}
	if err := s.backend.Set(key, raw); err != nil {
		logger.Warn("Snapshot write failed, keeping value for this session",
			"key", key, "error", fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err))
		s.overlay[key] = raw
		return
	}
	delete(s.overlay, key)
}

// Remove deletes key from the backend and the overlay.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.overlay, key)
	if s.backend == nil {
		return
	}
	if err := s.backend.Delete(key); err != nil {
		logger.Warn("Snapshot delete failed",
			"key", key, "error", fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err))
	}
}

// Degraded reports whether any key is currently held only in memory.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.overlay) > 0 && s.backend != nil
}
