package layout

import (
	"errors"
	"sync"
)

// ErrBusy is returned when a generation is already outstanding.
var ErrBusy = errors.New("a generation request is already in progress")

// Store is the session's single configuration. Updates to the same category
// are last-write-wins.
type Store struct {
	mu         sync.RWMutex
	cfg        Configuration
	generating bool
}

func NewStore() *Store {
	return &Store{cfg: Default()}
}

func NewStoreWith(cfg Configuration) *Store {
	return &Store{cfg: cfg.Clone()}
}

func (s *Store) Snapshot() Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Update applies p and returns the resulting configuration.
func (s *Store) Update(p Patch) Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = Apply(s.cfg, p)
	return s.cfg.Clone()
}

func (s *Store) Reset() Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = Default()
	return s.cfg.Clone()
}

// TryBeginGenerate sets the busy flag. It fails with ErrBusy if already set.
func (s *Store) TryBeginGenerate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return ErrBusy
	}
	s.generating = true
	return nil
}

func (s *Store) EndGenerate() {
	s.mu.Lock()
	s.generating = false
	s.mu.Unlock()
}

func (s *Store) Generating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generating
}
