package complete_session

import (
	"context"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

// SessionService переводит сессии в completed по redirect-вызову
type SessionService interface {
	Complete(ctx context.Context, tenant, sessionID string) (*domain.CheckoutSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
