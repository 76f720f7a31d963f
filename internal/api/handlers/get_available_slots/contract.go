package get_available_slots

import (
	"context"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/internal/service/availability"
	resolveAvailability "github.com/valle1212i/Glow-SessionService/internal/usecase/resolve_availability"
)

type ResolveAvailabilityUseCase interface {
	Execute(ctx context.Context, req *resolveAvailability.Request) (*resolveAvailability.Response, error)
}

// Catalog снимок каталога для поиска услуги и её длительности
type Catalog interface {
	ServiceByID(serviceID string) (*domain.Service, error)
}

// Coordinator вытесняет устаревшие запросы доступности одного клиента
type Coordinator interface {
	Resolve(ctx context.Context, clientID string, sel availability.Selection, fn func(ctx context.Context) (*resolveAvailability.Response, error)) (*resolveAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
