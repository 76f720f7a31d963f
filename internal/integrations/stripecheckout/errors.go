package stripecheckout

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation возвращается, когда Stripe отклонил параметры сессии
	ErrValidation = errors.New("stripecheckout client: validation error")

	// ErrUpstreamUnavailable возвращается при недоступности Stripe API
	ErrUpstreamUnavailable = errors.New("stripecheckout client: upstream unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stripecheckout client: internal error")
)

// ValidationError ошибка параметров с сообщением Stripe
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
