// Package file is a kv backend holding every key in one JSON document.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const documentVersion = 1

type document struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

type Store struct {
	mu   sync.Mutex
	path string
	doc  *document
}

func New(path string) *Store {
	return &Store{path: path}
}

// Init creates the document if it does not exist yet and loads it.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &document{Version: documentVersion, Entries: make(map[string]string)}
	return s.save()
}

func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'ecogamer init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > documentVersion {
		return fmt.Errorf("storage version (%d) is newer than supported version (%d)", doc.Version, documentVersion)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]string)
	}
	s.doc = doc
	return nil
}

func (s *Store) Close() error { return nil }

func (s *Store) Describe() string { return s.path }

// save writes to a sibling temp file and renames it over the document so a
// crash never leaves a half-written file.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ecogamer-*.json")
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	v, ok := s.doc.Entries[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	prev, had := s.doc.Entries[key]
	s.doc.Entries[key] = value
	if err := s.save(); err != nil {
		// keep memory and disk in agreement
		if had {
			s.doc.Entries[key] = prev
		} else {
			delete(s.doc.Entries, key)
		}
		return err
	}
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	prev, had := s.doc.Entries[key]
	if !had {
		return nil
	}
	delete(s.doc.Entries, key)
	if err := s.save(); err != nil {
		s.doc.Entries[key] = prev
		return err
	}
	return nil
}

func (s *Store) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	keys := make([]string, 0, len(s.doc.Entries))
	for k := range s.doc.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
