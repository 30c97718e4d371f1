package account

import (
	"context"
	"sync"
)

// MemoryStore keeps accounts in process memory. It is used when no database
// path is configured, and in tests.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: map[string]User{}}
}

func (s *MemoryStore) Create(_ context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[u.Username]; ok {
		return ErrUsernameTaken
	}
	s.m[u.Username] = u
	return nil
}

func (s *MemoryStore) GetByUsername(_ context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.m[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

var _ Store = (*MemoryStore)(nil)
