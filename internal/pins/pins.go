// Package pins keeps the two small per-project sets of feed entry ids the
// operator has starred or pinned, persisted to a YAML state file.
package pins

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

type fileState struct {
	Starred []string `yaml:"starred,omitempty"`
	Pinned  []string `yaml:"pinned,omitempty"`
}

// Store holds the starred and pinned sets and writes them back on every
// toggle, mirroring the always-saved behavior of a browser's local storage.
type Store struct {
	path    string
	mu      sync.Mutex
	starred map[string]struct{}
	pinned  map[string]struct{}
}

// Load reads the state file, treating a missing file as empty sets.
func Load(path string) (*Store, error) {
	s := &Store{
		path:    path,
		starred: map[string]struct{}{},
		pinned:  map[string]struct{}{},
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pins: read %s: %w", path, err)
	}
	var parsed fileState
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("pins: parse %s: %w", path, err)
	}
	for _, id := range parsed.Starred {
		s.starred[id] = struct{}{}
	}
	for _, id := range parsed.Pinned {
		s.pinned[id] = struct{}{}
	}
	return s, nil
}

// ToggleStar flips the starred state for an entry id and reports the new
// state. The change is persisted immediately.
func (s *Store) ToggleStar(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	on := toggle(s.starred, id)
	_ = s.save()
	return on
}

// TogglePin flips the pinned state for an entry id and reports the new
// state. The change is persisted immediately.
func (s *Store) TogglePin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	on := toggle(s.pinned, id)
	_ = s.save()
	return on
}

// Starred reports whether the entry id is starred.
func (s *Store) Starred(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.starred[id]
	return ok
}

// Pinned reports whether the entry id is pinned.
func (s *Store) Pinned(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pinned[id]
	return ok
}

func toggle(set map[string]struct{}, id string) bool {
	if _, ok := set[id]; ok {
		delete(set, id)
		return false
	}
	set[id] = struct{}{}
	return true
}

// save writes both sets sorted so the file stays diff-friendly. Caller
// holds the mutex.
func (s *Store) save() error {
	state := fileState{
		Starred: sortedKeys(s.starred),
		Pinned:  sortedKeys(s.pinned),
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("pins: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("pins: create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("pins: write %s: %w", s.path, err)
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
