package create_booking

import (
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Tenant        string           // Идентификатор арендатора
	ProviderID    string           // ID мастера
	Service       domain.Service   // Услуга (длительность определяет конец слота)
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // ID созданного бронирования в портале
	ProviderID      string           // ID мастера
	ServiceID       string           // ID услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
}
