package create_booking

import (
	"context"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	createBooking "github.com/valle1212i/Glow-SessionService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Catalog снимок каталога для поиска услуги и её длительности
type Catalog interface {
	ServiceByID(serviceID string) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
