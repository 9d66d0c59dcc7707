package dataset

import (
	"context"
	"sync"
	"time"
)

// Store holds the current snapshot
// A failed reload never replaces a good snapshot, and the first load leaves it unset on failure
type Store struct {
	source Source
	// Held across a whole load so concurrent reloads never write the same cache files
	reloading sync.Mutex

	lock     sync.RWMutex
	current  *Dataset
	lastErr  error
	loadedAt time.Time
	onReload []func(*Dataset, time.Time)
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// OnReload registers fn to be called after each successful reload with the new snapshot
func (s *Store) OnReload(fn func(ds *Dataset, loadedAt time.Time)) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.onReload = append(s.onReload, fn)
}

// Reload fetches and parses a fresh snapshot, a reload already running is waited for first
func (s *Store) Reload(ctx context.Context) error {
	s.reloading.Lock()
	defer s.reloading.Unlock()

	ds, err := Load(ctx, s.source)
	s.lock.Lock()
	s.lastErr = err
	if err != nil {
		s.lock.Unlock()
		return err
	}
	s.current = ds
	s.loadedAt = time.Now()
	loadedAt := s.loadedAt
	hooks := append([]func(*Dataset, time.Time){}, s.onReload...)
	s.lock.Unlock()

	for _, hook := range hooks {
		hook(ds, loadedAt)
	}
	return nil
}

// Snapshot returns the current dataset, or nil with the last load error if none is loaded
func (s *Store) Snapshot() (*Dataset, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.current == nil {
		if s.lastErr == nil {
			return nil, ErrNotLoaded
		}
		return nil, s.lastErr
	}
	return s.current, nil
}

// LastError is the error of the most recent load, nil if it worked
func (s *Store) LastError() error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.lastErr
}

func (s *Store) LoadedAt() time.Time {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.loadedAt
}
