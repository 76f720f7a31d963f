package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

// keyPrefix префикс ключей сессий в Redis
const keyPrefix = "glow:checkout:sessions:"

// RedisStore хранилище checkout-сессий в Redis, ключ - идентификатор сессии
// Заменяет глобальное изменяемое состояние cookie исходного прокси:
// каждая сессия адресуется явно, общего состояния между запросами нет.
// TTL привязан к сроку жизни checkout-сессии
type RedisStore struct {
	rdb        *redis.Client
	defaultTTL time.Duration
}

// NewRedisStore создает хранилище сессий поверх Redis
func NewRedisStore(rdb *redis.Client, defaultTTL time.Duration) *RedisStore {
	if defaultTTL <= 0 {
		defaultTTL = domain.DefaultSessionTTL
	}
	return &RedisStore{
		rdb:        rdb,
		defaultTTL: defaultTTL,
	}
}

// Save сохраняет сессию; TTL берется из ExpiresAt сессии, если тот задан
func (s *RedisStore) Save(ctx context.Context, session *domain.CheckoutSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal session: %v", ErrInternal, err)
	}

	ttl := s.defaultTTL
	if !session.ExpiresAt.IsZero() {
		if until := time.Until(session.ExpiresAt); until > 0 {
			ttl = until
		}
	}

	if err := s.rdb.Set(ctx, keyPrefix+session.SessionID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: failed to store session %s: %v", ErrInternal, session.SessionID, err)
	}

	return nil
}

// Get возвращает сессию по идентификатору
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to load session %s: %v", ErrInternal, sessionID, err)
	}

	var session domain.CheckoutSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal session %s: %v", ErrInternal, sessionID, err)
	}

	return &session, nil
}

// MarkCompleted переводит сессию в состояние completed
func (s *RedisStore) MarkCompleted(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
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
