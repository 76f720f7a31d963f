package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// Booking represents a reservation in the customer portal
// Создается через портал, отменяется вне этого сервиса;
// для расчета доступности используется только для проверки пересечений
type Booking struct {
	ID            string
	ServiceID     string
	ProviderID    string
	Start         time.Time
	End           time.Time
	Status        BookingStatus
	CustomerName  *string
	CustomerEmail *string
	CreatedAt     time.Time
}

// IsActive returns true if the booking still occupies its slot
// Отмененные бронирования освобождают слот и не участвуют в расчетах
func (b *Booking) IsActive() bool {
	return b.Status != StatusCanceled
}
