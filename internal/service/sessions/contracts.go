package sessions

import (
	"context"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/carttracker"
)

// SessionStore интерфейс хранилища checkout-сессий
type SessionStore interface {
	Save(ctx context.Context, session *domain.CheckoutSession) error
	Get(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
	MarkCompleted(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
}

// CartTracker интерфейс трекера брошенных корзин
type CartTracker interface {
	Register(ctx context.Context, tenant string, reg *carttracker.Registration) error
	Complete(ctx context.Context, tenant, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
