// Package localstore is the server-side analog of the browser's
// localStorage: a flat space of JSON-encoded string values addressed by
// string key, persisted as a single file. There is no query capability;
// higher-level stores decode whole values, mutate them and write them back.
package localstore

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// Keys used by the stores layered on top. They match the browser app's
// localStorage key names so an exported profile stays readable.
const (
	SnippetsKey      = "codeleap-snippets"
	ProgressKey      = "codeleap-challenge-progress"
	runHistoryPrefix = "codeleap-run-history-"
)

// Store is a mutex-guarded string key/value file. Every read-modify-write
// sequence against it must run under the mutex; the helpers here lock for
// single operations and Update covers compound ones.
type Store struct {
	mu   sync.Mutex
	path string
}

func Open(path string) *Store {
	return &Store{path: path}
}

// load reads the whole key space. Unparseable or missing content is treated
// as empty and logged, never propagated.
func (s *Store) load() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading local store %s: %v", s.path, err)
		}
		return map[string]string{}
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		log.Printf("Corrupt local store %s, treating as empty: %v", s.path, err)
		return map[string]string{}
	}
	return values
}

func (s *Store) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Get returns the raw value for a key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.load()[key]
	return value, ok
}

// Set writes the raw value for a key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	values[key] = value
	return s.save(values)
}

// Remove deletes a key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	delete(values, key)
	return s.save(values)
}

// Update runs fn on the current value of key under the lock and persists the
// result, so concurrent mutations of the same key cannot interleave.
func (s *Store) Update(key string, fn func(current string, ok bool) (string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	current, ok := values[key]
	next, err := fn(current, ok)
	if err != nil {
		return err
	}
	values[key] = next
	return s.save(values)
}
