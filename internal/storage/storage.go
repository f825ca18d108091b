package storage

import (
	"sync"

	"photodiary/internal/models"
)

// SessionStore is an in-memory store of photo sessions, safe for
// concurrent use.
type SessionStore struct {
	sessions map[string]*models.PhotoSession
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.PhotoSession),
	}
}

func (s *SessionStore) Get(sessionID string) (*models.PhotoSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *models.PhotoSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
}

func (s *SessionStore) GetAll() map[string]*models.PhotoSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.PhotoSession, len(s.sessions))
	for k, v := range s.sessions {
		result[k] = v
	}
	return result
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
