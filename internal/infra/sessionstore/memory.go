package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

// MemoryStore хранилище сессий в памяти
// Используется в тестах и при локальном запуске без Redis
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.CheckoutSession
}

// NewMemoryStore создает in-memory хранилище сессий
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.CheckoutSession),
	}
}

// Save сохраняет сессию
func (s *MemoryStore) Save(_ context.Context, session *domain.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	s.sessions[session.SessionID] = &copied
	return nil
}

// Get возвращает сессию по идентификатору
// Истекшие сессии трактуются как отсутствующие, как и в Redis с TTL
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*domain.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
		return nil, ErrSessionNotFound
	}

	copied := *session
	return &copied, nil
}

// MarkCompleted переводит сессию в состояние completed
func (s *MemoryStore) MarkCompleted(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Status = domain.SessionCompleted
	if err := s.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
