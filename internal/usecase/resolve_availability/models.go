package resolve_availability

import (
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Tenant     string         // Идентификатор арендатора (из заголовка запроса)
	ProviderID string         // ID мастера
	Service    domain.Service // Услуга (длительность определяет длину слота)
	Date       time.Time      // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
// FullyBooked отличает "открыто, но все занято" от "закрыто":
// вызывающий код обязан показывать разные сообщения
type Response struct {
	Date               time.Time         // Дата, на которую запрашивались слоты
	ProviderID         string            // ID мастера
	ServiceID          string            // ID услуги
	Slots              []domain.TimeSlot // Список доступных слотов
	UsingFallbackHours bool              // Использованы общие часы вместо расписания мастера
	FullyBooked        bool              // Открыто, но свободных слотов нет
}
