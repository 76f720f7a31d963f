package checkoutservice

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfStock возвращается, когда сервис сессий отклонил заказ по остаткам
	// Сообщение от сервиса авторитетно и пробрасывается пользователю дословно
	ErrOutOfStock = errors.New("checkoutservice client: out of stock")

	// ErrValidation возвращается при 4xx с конкретным сообщением
	ErrValidation = errors.New("checkoutservice client: validation error")

	// ErrUpstreamUnavailable возвращается при 5xx, не-JSON ответе или ответе
	// без обязательных полей (success + непустой checkoutUrl)
	ErrUpstreamUnavailable = errors.New("checkoutservice client: upstream unavailable")

	// ErrNetwork возвращается при сетевых ошибках (таймаут, обрыв соединения)
	ErrNetwork = errors.New("checkoutservice client: network error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("checkoutservice client: internal error")
)

// StockError ошибка остатков с дословным сообщением сервиса
type StockError struct {
	Message string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%v: %s", ErrOutOfStock, e.Message)
}

// Unwrap позволяет проверять errors.Is(err, ErrOutOfStock)
func (e *StockError) Unwrap() error {
	return ErrOutOfStock
}

// ValidationError ошибка валидации с сообщением сервиса
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
