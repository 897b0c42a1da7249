package session

import (
	"sync"
	"time"
)

// Session is the per-user key-value store the OIDC flow keeps its pending
// values in. It implements the oidc.Store interface. All methods are safe for
// concurrent use, though a single user's flow is strictly sequential.
type Session struct {
	id string

	mu     sync.RWMutex
	values map[string]string
	// lastSeen drives idle expiry. Updated on every lookup by the manager.
	lastSeen time.Time
}

func newSession(id string) *Session {
	return &Session{id: id, values: map[string]string{}, lastSeen: time.Now()}
}

// ID returns the session's identifier, as carried by the session cookie.
func (s *Session) ID() string {
	return s.id
}

// Set stores the value under the given key.
func (s *Session) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Get returns the value under the given key, and whether it was present.
func (s *Session) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.values[key]
	return value, found
}

// Remove deletes the value under the given key.
func (s *Session) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Clear deletes all values in the session, not just the OIDC keys.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = map[string]string{}
	return nil
}

// touch refreshes the session's idle timer.
func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
}

// idleSince returns the last time the session was used.
func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSeen
}
