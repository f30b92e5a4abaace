package session

import (
	"sync"

	"github.com/gewei11/multichat/core"
)

// Store is the conversation-history contract the dispatcher depends on.
// History returns a snapshot; appends after the call do not alter it.
type Store interface {
	Append(sessionID string, turn core.Turn) error
	History(sessionID string) ([]core.Turn, error)
	Clear(sessionID string) error
}

// InMemoryStore is a volatile Store keeping history in a process-local map.
// It is safe for concurrent access. Returned slices are copies so callers
// cannot mutate internal state.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]core.Turn
}

// NewInMemoryStore constructs an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string][]core.Turn)}
}

// Append records one turn at the end of the session history, creating the
// session lazily.
func (s *InMemoryStore) Append(sessionID string, turn core.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], turn)
	return nil
}

// History returns a copy of the session history in insertion order. An
// unknown session yields an empty history, not an error.
func (s *InMemoryStore) History(sessionID string) ([]core.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.sessions[sessionID]
	out := make([]core.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// Clear drops the history of one session.
func (s *InMemoryStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len reports how many sessions currently hold history.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
