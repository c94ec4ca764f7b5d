// Package session keeps per-chat conversational state in memory. Sessions do
// not survive a restart; a user simply re-selects a model.
package session

import (
	"sync"

	"medscan/internal/domain"
)

// Store holds one Session per chat, created lazily on first access.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*domain.Session)}
}

// Get returns a copy of the chat's session, creating an idle one if the chat
// is new.
func (s *Store) Get(chatID int64) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.session(chatID)
}

// Select marks the model the chat's next input is meant for.
func (s *Store) Select(chatID int64, model domain.ModelID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(chatID).Selected = model
}

// Reset clears the chat's selection. Called after every prediction attempt,
// successful or not.
func (s *Store) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(chatID).Selected = domain.ModelNone
}

func (s *Store) session(chatID int64) *domain.Session {
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &domain.Session{ChatID: chatID, Selected: domain.ModelNone}
		s.sessions[chatID] = sess
	}
	return sess
}
