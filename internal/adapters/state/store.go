// Package state persists the record of the last project generation.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.StateStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	state domain.ProjectState
}

// NewStore creates a new StateStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read project state"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal project state"), "path", s.path)
	}

	return nil
}

func (s *Store) save(state domain.ProjectState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal project state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for project state"), "dir", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write project state"), "path", s.path)
	}

	return nil
}

// Get returns the stored project state. The zero value is returned if nothing was stored yet.
func (s *Store) Get() (domain.ProjectState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, nil
}

// Put writes the project state to disk and then makes it current.
func (s *Store) Put(state domain.ProjectState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(state); err != nil {
		return err
	}
	s.state = state
	return nil
}
