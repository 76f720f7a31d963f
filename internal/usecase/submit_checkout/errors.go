package submit_checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput        = errors.New("invalid input data")
	ErrMissingVariant      = errors.New("missing variant")
	ErrOutOfStock          = errors.New("out of stock")
	ErrValidation          = errors.New("validation failed")
	ErrNetwork             = errors.New("network failure")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInternal            = errors.New("internal error")
)

// MissingVariantError перечисляет товары без разрешённого артикула.
// Оформление заказа прерывается до создания сессии
type MissingVariantError struct {
	ProductIDs []string
}

func (e *MissingVariantError) Error() string {
	return fmt.Sprintf("could not resolve variants for products: %s", strings.Join(e.ProductIDs, ", "))
}

func (e *MissingVariantError) Unwrap() error {
	return ErrMissingVariant
}

// OutOfStockError часть товаров недоступна на складе
type OutOfStockError struct {
	Message string
}

func (e *OutOfStockError) Error() string {
	return e.Message
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}

// ValidationError ошибка валидации корзины на стороне платежного бэкенда
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
