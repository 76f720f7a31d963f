package bookingservice

import (
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

// Service модель услуги из портала
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Provider модель мастера из портала
type Provider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// servicesResponse обертка списка услуг
type servicesResponse struct {
	Services []Service `json:"services"`
}

// providersResponse обертка списка мастеров
type providersResponse struct {
	Providers []Provider `json:"providers"`
}

// ProviderAvailability ответ provider-specific availability endpoint
// UsingGeneralHours=true означает, что мастер без собственного расписания
// унаследовал общие часы салона
type ProviderAvailability struct {
	IsOpen            bool     `json:"isOpen"`
	UsingGeneralHours bool     `json:"usingGeneralHours"`
	Slots             []string `json:"slots"` // Времена начала "HH:MM"
}

// Booking модель бронирования из портала
type Booking struct {
	ID         string    `json:"id"`
	ServiceID  string    `json:"serviceId"`
	ProviderID string    `json:"providerId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
}

// bookingsResponse обертка списка бронирований
type bookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

// CreateBookingRequest запрос на создание бронирования в портале
type CreateBookingRequest struct {
	ServiceID     string `json:"serviceId"`
	ProviderID    string `json:"providerId"`
	Date          string `json:"date"`      // YYYY-MM-DD
	StartTime     string `json:"startTime"` // HH:MM
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

// conflictResponse тело ответа 409
type conflictResponse struct {
	Message          string   `json:"message"`
	AlternativeSlots []string `json:"alternativeSlots"`
}

// errorResponse тело ответа 4xx
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует бронирование в доменную модель
func (b Booking) ToDomain() *domain.Booking {
	status := domain.BookingStatus(b.Status)
	return &domain.Booking{
		ID:         b.ID,
		ServiceID:  b.ServiceID,
		ProviderID: b.ProviderID,
		Start:      b.Start,
		End:        b.End,
		Status:     status,
	}
}

// ToDomain конвертирует услугу в доменную модель
func (s Service) ToDomain() domain.Service {
	return domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
	}
}

// ToDomain конвертирует мастера в доменную модель
func (p Provider) ToDomain() domain.Provider {
	return domain.Provider{
		ID:   p.ID,
		Name: p.Name,
	}
}
