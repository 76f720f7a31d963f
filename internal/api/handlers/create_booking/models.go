package create_booking

import (
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	createBooking "github.com/valle1212i/Glow-SessionService/internal/usecase/create_booking"
	"github.com/valle1212i/Glow-SessionService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProviderID    string `json:"providerId"`
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`      // YYYY-MM-DD
	StartTime     string `json:"startTime"` // HH:MM
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID              string `json:"id"`
	ProviderID      string `json:"providerId"`
	ServiceID       string `json:"serviceId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

// ConflictResponse ответ на проигранную гонку бронирования.
// Альтернативы приходят от портала и пробрасываются как есть
type ConflictResponse struct {
	Message          string   `json:"message"`
	AlternativeSlots []string `json:"alternativeSlots,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest(tenant string, service domain.Service) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Tenant:        tenant,
		ProviderID:    r.ProviderID,
		Service:       service,
		Date:          date,
		StartTime:     startTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:              resp.ID,
		ProviderID:      resp.ProviderID,
		ServiceID:       resp.ServiceID,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
	}
}
