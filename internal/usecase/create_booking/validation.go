package create_booking

import (
	"fmt"
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Tenant == "" {
		return fmt.Errorf("%w: tenant is required", ErrInvalidInput)
	}

	if req.ProviderID == "" {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if req.Service.ID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlotWithinHours проверяет, что слот лежит в рабочем окне
// Строгая граница закрытия: слот, заканчивающийся ровно во время
// закрытия, не принимается - та же политика, что и у резолвера слотов
func validateSlotWithinHours(startTime types.TimeString, durationMinutes int, open, close types.TimeString) error {
	if startTime.IsBefore(open) {
		return fmt.Errorf("%w: slot starts before opening time", ErrInvalidTimeSlot)
	}

	if !startTime.IsBefore(close) {
		return fmt.Errorf("%w: slot starts at or after closing time", ErrInvalidTimeSlot)
	}

	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: slot end is beyond day boundary", ErrInvalidTimeSlot)
	}

	if !slotEnd.IsBefore(close) {
		return fmt.Errorf("%w: slot would end at or after closing time", ErrInvalidTimeSlot)
	}

	return nil
}

// validateBookingTime проверяет минимальное уведомление для сегодняшних броней
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minBookingNoticeMinutes int,
) error {
	// Если дата бронирования не сегодня, проверка не нужна
	if !isSameDay(bookingDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	return nil
}

// resolveWorkingWindow определяет рабочее окно на дату бронирования
func resolveWorkingWindow(schedule *domain.ScheduleSettings, date time.Time) (open, close types.TimeString, err error) {
	day := schedule.Week.DayHoursFor(date)
	if day != nil {
		if !day.IsOpen {
			return "", "", ErrCompanyClosed
		}
		return *day.StartTime, *day.EndTime, nil
	}

	if schedule.Calendar != nil {
		return schedule.Calendar.StartTime, schedule.Calendar.EndTime, nil
	}

	return "", "", ErrNotConfigured
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
