package catalogcache

import (
	"context"

	"github.com/valle1212i/Glow-SessionService/internal/integrations/bookingservice"
)

// BookingOptionsClient интерфейс клиента портала для загрузки услуг и мастеров
type BookingOptionsClient interface {
	ListServices(ctx context.Context, tenant string) ([]bookingservice.Service, error)
	ListProviders(ctx context.Context, tenant string) ([]bookingservice.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
