package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrCompanyClosed возвращается, когда салон закрыт в указанную дату
	ErrCompanyClosed = errors.New("create_booking: closed on this date")

	// ErrNotConfigured возвращается, когда часы работы не настроены
	ErrNotConfigured = errors.New("create_booking: opening hours not configured")

	// ErrInvalidTimeSlot возвращается, когда слот вне рабочих часов
	// или заканчивается на времени закрытия (строгая граница)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается при нарушении минимального уведомления
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotConflict возвращается при проигранной гонке: слот заняли первее
	// Отличим от ошибки валидации; детали в SlotConflictError
	ErrSlotConflict = errors.New("create_booking: slot conflict")

	// ErrValidation возвращается, когда портал отклонил запрос с сообщением
	ErrValidation = errors.New("create_booking: validation error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotConflictError проигранная гонка бронирования с альтернативами от портала
type SlotConflictError struct {
	Message          string
	AlternativeSlots []string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSlotConflict, e.Message)
}

// Unwrap позволяет проверять errors.Is(err, ErrSlotConflict)
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}

// ValidationError отказ портала с конкретным сообщением для пользователя
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, e.Message)
}

// Unwrap позволяет проверять errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
