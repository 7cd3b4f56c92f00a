package backend

import "sync"

// PrefStore holds the notification preference. It is the source of truth;
// the view only mirrors it. Guarded because the interval notifier reads it
// from outside the event loop.
type PrefStore struct {
	mu      sync.Mutex
	enabled bool
}

// NewPrefStore creates a store with notifications disabled.
func NewPrefStore() *PrefStore {
	return &PrefStore{}
}

// Enabled reports the current preference.
func (s *PrefStore) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// SetEnabled updates the preference.
func (s *PrefStore) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}
