package get_available_slots

import (
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	resolveAvailability "github.com/valle1212i/Glow-SessionService/internal/usecase/resolve_availability"
)

// Статусы дня в ответе. Закрытый день, ненастроенные часы и полностью
// занятый день - три разных исхода с разными сообщениями пользователю
const (
	statusAvailable     = "available"
	statusFullyBooked   = "fully_booked"
	statusClosed        = "closed"
	statusNotConfigured = "not_configured"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date               string          `json:"date"`
	ProviderID         string          `json:"providerId"`
	ServiceID          string          `json:"serviceId"`
	Status             string          `json:"status"`
	Slots              []AvailableSlot `json:"slots"`
	UsingFallbackHours bool            `json:"usingFallbackHours"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveAvailability.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	status := statusAvailable
	if resp.FullyBooked {
		status = statusFullyBooked
	}

	return &AvailableSlotsResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		ProviderID:         resp.ProviderID,
		ServiceID:          resp.ServiceID,
		Status:             status,
		Slots:              slots,
		UsingFallbackHours: resp.UsingFallbackHours,
	}
}

// emptyResponse ответ без слотов для закрытого или ненастроенного дня
func emptyResponse(date time.Time, providerID, serviceID, status string) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:       date.Format(domain.DateFormat),
		ProviderID: providerID,
		ServiceID:  serviceID,
		Status:     status,
		Slots:      []AvailableSlot{},
	}
}
