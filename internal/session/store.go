package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pasarkita/marketplace/internal/domain"
)

// Store maps opaque tokens to the User snapshot captured at login time.
// The snapshot is deliberately not re-synced with later edits to the user.
type Store interface {
	Create(ctx context.Context, user domain.User) (string, error)
	Get(ctx context.Context, token string) (domain.User, bool, error)
	Destroy(ctx context.Context, token string) error
}

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.User),
	}
}

func (s *MemoryStore) Create(_ context.Context, user domain.User) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = user
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (domain.User, bool, error) {
	s.mu.RLock()
	user, ok := s.sessions[token]
	s.mu.RUnlock()

	return user, ok, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	return nil
}
