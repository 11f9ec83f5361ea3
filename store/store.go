// Package store provides the persisted key-value session store backing small
// bits of client-side state: the welcome flag, recent searches, the device
// ID. It replaces ad hoc file reads sprinkled through components with one
// explicit Open/Close boundary per session.
//
// Values are strings; JSON-encoded string lists get dedicated helpers. The
// store is owned by the single UI goroutine and is not safe for concurrent
// writers.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const filename = "state.json"

// stateFile is the on-disk shape.
type stateFile struct {
	DeviceID string            `json:"device_id"`
	Values   map[string]string `json:"values"`
}

// Store is a write-through key-value store persisted as JSON in the profile
// directory. Every Set and Delete is flushed immediately; Close flushes once
// more as the explicit teardown boundary.
type Store struct {
	path  string
	state stateFile
}

// Open reads (or creates) the store under dir. A fresh store is assigned a
// device ID on first open; the ID is stable for the lifetime of the profile.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create profile dir: %w", err)
	}
	s := &Store{
		path: filepath.Join(dir, filename),
		state: stateFile{
			Values: map[string]string{},
		},
	}
	data, err := os.ReadFile(s.path)
	if err == nil {
		if err := json.Unmarshal(data, &s.state); err != nil {
			return nil, fmt.Errorf("store: corrupt state file %s: %w", s.path, err)
		}
		if s.state.Values == nil {
			s.state.Values = map[string]string{}
		}
	}
	if s.state.DeviceID == "" {
		s.state.DeviceID = uuid.NewString()
		if err := s.flush(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DeviceID returns the stable identifier assigned at first open.
func (s *Store) DeviceID() string { return s.state.DeviceID }

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.state.Values[key]
	return v, ok
}

// Set stores value under key and persists immediately.
func (s *Store) Set(key, value string) error {
	s.state.Values[key] = value
	return s.flush()
}

// Delete removes key and persists immediately. Deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	if _, ok := s.state.Values[key]; !ok {
		return nil
	}
	delete(s.state.Values, key)
	return s.flush()
}

// Keys returns all keys with the given prefix, in no particular order.
func (s *Store) Keys(prefix string) []string {
	var keys []string
	for k := range s.state.Values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

// GetStrings returns the JSON string list stored under key, or nil.
func (s *Store) GetStrings(key string) []string {
	raw, ok := s.state.Values[key]
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// SetStrings stores a JSON string list under key.
func (s *Store) SetStrings(key string, values []string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return s.Set(key, string(raw))
}

// PushRecent prepends value to the list under key, deduplicating and keeping
// at most max entries. Used for recent-search history.
func (s *Store) PushRecent(key, value string, max int) error {
	if max < 1 {
		max = 1
	}
	existing := s.GetStrings(key)
	out := make([]string, 0, max)
	out = append(out, value)
	for _, v := range existing {
		if v == value {
			continue
		}
		out = append(out, v)
		if len(out) == max {
			break
		}
	}
	return s.SetStrings(key, out)
}

// Close flushes the store. The Store must not be used afterwards.
func (s *Store) Close() error {
	return s.flush()
}

func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}
