package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/internal/infra/sessionstore"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/carttracker"
	"github.com/valle1212i/Glow-SessionService/pkg/retry"
)

// Service жизненный цикл checkout-сессии: регистрация pending-сессии,
// перевод в completed по redirect-вызову, чтение состояния.
// Переход в abandoned определяется внешним сервисом по таймауту
type Service struct {
	store       SessionStore
	tracker     CartTracker
	retryPolicy retry.Policy
	logger      Logger
}

func New(store SessionStore, tracker CartTracker, logger Logger) *Service {
	return &Service{
		store:       store,
		tracker:     tracker,
		retryPolicy: retry.DefaultPolicy(),
		logger:      logger,
	}
}

// Register сохраняет созданную сессию и регистрирует её в трекере корзин.
// Вызов best-effort: отказ любой из сторон логируется, но не возвращается -
// пользователь в любом случае должен уйти на оплату
func (s *Service) Register(ctx context.Context, tenant string, session *domain.CheckoutSession) error {
	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("Register: failed to save session %s: %v", session.SessionID, err)
	}

	reg := &carttracker.Registration{
		SessionID:     session.SessionID,
		Tenant:        tenant,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
		CustomerEmail: session.CustomerEmail,
		CreatedAt:     session.CreatedAt,
	}

	err := retry.Do(ctx, s.retryPolicy, func() error {
		return s.tracker.Register(ctx, tenant, reg)
	})
	if err != nil {
		// Без регистрации сессия выпадает из аналитики брошенных корзин
		s.logger.Error("Register: cart tracker registration for session %s failed: %v", session.SessionID, err)
		return err
	}

	s.logger.Info("Register: session %s registered for tenant %s", session.SessionID, tenant)
	return nil
}

// Complete переводит сессию в completed и уведомляет трекер корзин
func (s *Service) Complete(ctx context.Context, tenant, sessionID string) (*domain.CheckoutSession, error) {
	session, err := s.store.MarkCompleted(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			s.logger.Warn("Complete: session %s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Complete: failed to mark session %s completed: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.tracker.Complete(ctx, tenant, sessionID); err != nil {
		// Трекер узнает о завершении позже через собственный таймаут-механизм
		s.logger.Warn("Complete: cart tracker notification for session %s failed: %v", sessionID, err)
	}

	s.logger.Info("Complete: session %s marked completed", sessionID)
	return session, nil
}

// Get возвращает сохранённую сессию
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return session, nil
}
