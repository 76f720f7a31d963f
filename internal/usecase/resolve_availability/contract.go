package resolve_availability

import (
	"context"
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/integrations/bookingservice"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/settingsservice"
)

// AvailabilityClient интерфейс provider-specific availability endpoint портала
type AvailabilityClient interface {
	GetProviderAvailability(ctx context.Context, tenant, providerID string, date time.Time, durationMinutes int) (*bookingservice.ProviderAvailability, error)
}

// SettingsClient интерфейс клиента настроек бронирования
type SettingsClient interface {
	GetSettings(ctx context.Context, tenant string) (*settingsservice.BookingSettings, error)
}

// BookingsClient интерфейс клиента списка бронирований
type BookingsClient interface {
	ListBookings(ctx context.Context, tenant string, from, to time.Time, providerID string) ([]bookingservice.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
