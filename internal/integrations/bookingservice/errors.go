package bookingservice

import (
	"errors"
	"fmt"
)

var (
	// ErrAvailabilityNotSupported возвращается, когда портал не реализует
	// provider-specific availability endpoint (резолвер переходит к локальной генерации)
	ErrAvailabilityNotSupported = errors.New("bookingservice client: provider availability not supported")

	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = errors.New("bookingservice client: provider not found")

	// ErrSlotConflict возвращается при 409: слот заняли быстрее (проигранная гонка)
	// Отличим от обычной ошибки валидации; детали конфликта в ConflictError
	ErrSlotConflict = errors.New("bookingservice client: slot conflict")

	// ErrValidation возвращается при 4xx с конкретным сообщением от портала
	ErrValidation = errors.New("bookingservice client: validation error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)

// ConflictError детали проигранной гонки бронирования
// Портал может предложить альтернативные времена - они пробрасываются пользователю
type ConflictError struct {
	Message          string
	AlternativeSlots []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSlotConflict, e.Message)
}

// Unwrap позволяет проверять errors.Is(err, ErrSlotConflict)
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}

// ValidationError ошибка валидации с сообщением от портала
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
