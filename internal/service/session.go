package service

import (
	"sync"

	"wordcards/internal/domain"
)

type sessionEntry struct {
	mu      sync.Mutex
	session domain.Session
}

// SessionStore keeps sessions in memory, one per user.
// Events of one user are applied in order; different users do not block each other.
type SessionStore struct {
	mu      sync.Mutex
	entries map[int64]*sessionEntry
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{entries: make(map[int64]*sessionEntry)}
}

func (s *SessionStore) entry(userID int64) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &sessionEntry{session: domain.NewSession(userID)}
		s.entries[userID] = e
	}
	return e
}

// Do runs fn with the user's exclusive section held and stores what it returns
func (s *SessionStore) Do(userID int64, fn func(domain.Session) domain.Session) {
	e := s.entry(userID)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = fn(e.session)
}

// Get returns a snapshot of the user's session
func (s *SessionStore) Get(userID int64) domain.Session {
	e := s.entry(userID)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Len returns the number of known sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
