package repository

import (
	"context"
	"sync"

	"electripro/internal/usecase/interfaces"
)

// SessionMemoryStore holds the stub sign-in sessions. Tokens are opaque and
// live only for the process lifetime.

type SessionMemoryStore struct {
	mu     sync.Mutex
	owners map[string]string
}

var _ interfaces.ISessionStore = (*SessionMemoryStore)(nil)

func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{owners: map[string]string{}}
}

func (s *SessionMemoryStore) Put(_ context.Context, token, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[token] = ownerID
	return nil
}

func (s *SessionMemoryStore) Get(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owners[token], nil
}

func (s *SessionMemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.owners, token)
	return nil
}
