package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy ограниченная политика повторов: максимум попыток и экспоненциальная
// задержка между ними. Применяется только к вызовам, отказ которых не влияет
// на результат операции (например, регистрация сессии в трекере корзин) -
// основные удаленные вызовы завершаются с типизированной ошибкой сразу
type Policy struct {
	MaxAttempts     uint64        // Общее количество попыток, включая первую
	InitialInterval time.Duration // Начальная задержка между попытками
	MaxInterval     time.Duration // Максимальная задержка между попытками
}

// DefaultPolicy политика по умолчанию: 3 попытки, 250ms -> 2s
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 250 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

// Do выполняет op с повторами согласно политике
// Прерывается при отмене контекста; возвращает последнюю ошибку
func Do(ctx context.Context, p Policy, op func() error) error {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}

	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, attempts-1), ctx))
}
