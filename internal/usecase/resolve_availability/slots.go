package resolve_availability

import (
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/pkg/types"
)

// generateTimeSlots генерирует кандидатов на бронирование в окне [open, close)
// Старты идут от open с фиксированным шагом stepMinutes; кандидат отбрасывается,
// если start >= close или конец слота выходит на время закрытия.
// Слот, заканчивающийся ровно во время закрытия, НЕ предлагается -
// это намеренная политика границы, а не off-by-one
func generateTimeSlots(
	open, close types.TimeString,
	stepMinutes, durationMinutes int,
	requestDate time.Time,
	now time.Time,
	minBookingNoticeMinutes int,
) []domain.TimeSlot {
	// Даты в прошлом не дают слотов
	if isDateInPast(requestDate, now) {
		return []domain.TimeSlot{}
	}

	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotIntervalMinutes
	}

	allSlots := make([]domain.TimeSlot, 0)
	currentStart := open

	for currentStart.IsBefore(close) {
		slotEnd, err := currentStart.AddMinutes(durationMinutes)
		if err != nil {
			// Конец слота за границей суток - дальше все кандидаты еще позже
			break
		}

		// Строгая граница: конец должен быть строго раньше закрытия
		if !slotEnd.IsBefore(close) {
			break
		}

		allSlots = append(allSlots, domain.TimeSlot{
			StartTime:       currentStart,
			EndTime:         slotEnd,
			DurationMinutes: durationMinutes,
		})

		next, err := currentStart.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		currentStart = next
	}

	// Для будущих дат фильтрация по текущему времени не нужна
	if !isSameDay(requestDate, now) {
		return allSlots
	}

	// Для сегодняшней даты отбрасываем слоты раньше now + минимальное уведомление
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		// Минимальное время за границей суток - сегодня уже ничего не доступно
		return []domain.TimeSlot{}
	}

	availableSlots := make([]domain.TimeSlot, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.StartTime.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots
}

// filterBookedSlots отбрасывает слоты, пересекающиеся с активными бронированиями
// Полуоткрытые интервалы [start, end): пересечение есть только если
// начало бронирования СТРОГО раньше конца слота И конец бронирования
// СТРОГО позже начала слота. Слот, граничащий с бронированием
// (slot.end == booking.start), остается доступным.
// Отмененные бронирования освобождают слот и пропускаются
func filterBookedSlots(slots []domain.TimeSlot, bookings []*domain.Booking) []domain.TimeSlot {
	if len(bookings) == 0 {
		return slots
	}

	free := make([]domain.TimeSlot, 0, len(slots))

	for _, slot := range slots {
		if !slotOverlapsAny(slot, bookings) {
			free = append(free, slot)
		}
	}

	return free
}

func slotOverlapsAny(slot domain.TimeSlot, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		// Пропускаем отмененные бронирования
		if !booking.IsActive() {
			continue
		}

		bookingStart := types.NewTimeString(booking.Start)
		bookingEnd := types.NewTimeString(booking.End)

		if bookingStart.IsBefore(slot.EndTime) && bookingEnd.IsAfter(slot.StartTime) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
