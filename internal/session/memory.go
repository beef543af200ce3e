package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore mantém sessões em memória. Serve para desenvolvimento local
// sem Redis e para os testes; as sessões morrem junto com o processo.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uint, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(sess.expiresAt) {
		return 0, ErrNotFound
	}

	return sess.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)
