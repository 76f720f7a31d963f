package resolve_availability

import "errors"

var (
	// ErrClosed возвращается, когда салон закрыт в указанную дату
	ErrClosed = errors.New("resolve_availability: closed on this date")

	// ErrNotConfigured возвращается, когда часы работы не настроены вовсе
	// Окно работы в этом случае не угадывается
	ErrNotConfigured = errors.New("resolve_availability: opening hours not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_availability: internal error")
)
