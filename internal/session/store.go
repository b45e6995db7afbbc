package session

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultTTL is how long an untouched session is kept.
const DefaultTTL = 2 * time.Hour

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Store maps session IDs to sessions.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewStore creates an empty store. A non-positive ttl uses DefaultTTL.
func NewStore(ttl time.Duration, logger *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Get returns the session for id and marks it as recently used.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.session, true
}

// GetOrCreate returns the session for id, creating an empty one if needed.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[id]; ok {
		e.lastSeen = s.now()
		return e.session
	}
	sess := newSession(id)
	s.sessions[id] = &entry{session: sess, lastSeen: s.now()}
	s.logger.Debug("session created", "session_id", id)
	return sess
}

// Delete ends a session, discarding its records.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("expired sessions swept", "removed", removed, "remaining", len(s.sessions))
	}
	return removed
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// TTL returns the idle timeout.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
