package create_booking

import (
	"context"
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/integrations/bookingservice"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/settingsservice"
)

// SettingsClient интерфейс клиента настроек бронирования
type SettingsClient interface {
	GetSettings(ctx context.Context, tenant string) (*settingsservice.BookingSettings, error)
}

// BookingsClient интерфейс клиента создания бронирований
type BookingsClient interface {
	CreateBooking(ctx context.Context, tenant string, req *bookingservice.CreateBookingRequest) (*bookingservice.Booking, error)
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
