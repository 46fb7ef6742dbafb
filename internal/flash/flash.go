package flash

import (
	"sync"
)

// Notice levels shown on the next rendered page.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

type Notice struct {
	Level   string
	Message string
}

// Store keeps per-session notices in memory until the next page render
// drains them (the toast pattern, server-side).
type Store struct {
	mu      sync.Mutex
	notices map[string][]Notice
}

func NewStore() *Store {
	return &Store{
		notices: make(map[string][]Notice),
	}
}

// Push queues a notice for a session.
func (s *Store) Push(sessionID, level, message string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices[sessionID] = append(s.notices[sessionID], Notice{Level: level, Message: message})
}

func (s *Store) Success(sessionID, message string) {
	s.Push(sessionID, LevelSuccess, message)
}

func (s *Store) Error(sessionID, message string) {
	s.Push(sessionID, LevelError, message)
}

// Pop drains and returns all pending notices for a session.
func (s *Store) Pop(sessionID string) []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.notices[sessionID]
	delete(s.notices, sessionID)
	return pending
}
