package availability

import (
	"context"
	"sync"
)

// Selection кортеж выбора, по которому идёт поиск доступности
type Selection struct {
	ProviderID string
	ServiceID  string
	Date       string
}

type flight struct {
	selection Selection
	seq       uint64
	cancel    context.CancelFunc
}

// Coordinator сериализует конкурирующие запросы доступности одного клиента.
// Когда клиент меняет выбор (дата, услуга, мастер) до завершения предыдущего
// запроса, новый запрос отменяет старый, а результат старого отбрасывается -
// побеждает всегда более поздний выбор
type Coordinator[T any] struct {
	mu      sync.Mutex
	seq     uint64
	flights map[string]*flight
}

func NewCoordinator[T any]() *Coordinator[T] {
	return &Coordinator[T]{
		flights: make(map[string]*flight),
	}
}

// Resolve выполняет fn для клиента clientID. Если за время выполнения
// тот же клиент запустил новый Resolve, контекст fn отменяется и
// вызов возвращает ErrSuperseded вместо результата
func (c *Coordinator[T]) Resolve(ctx context.Context, clientID string, sel Selection, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	flightCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if prev, ok := c.flights[clientID]; ok {
		prev.cancel()
	}
	c.seq++
	f := &flight{selection: sel, seq: c.seq, cancel: cancel}
	c.flights[clientID] = f
	c.mu.Unlock()

	result, err := fn(flightCtx)

	c.mu.Lock()
	current, ok := c.flights[clientID]
	superseded := !ok || current.seq != f.seq
	if !superseded {
		delete(c.flights, clientID)
	}
	c.mu.Unlock()

	cancel()

	if superseded {
		return zero, ErrSuperseded
	}

	if err != nil {
		// Отмена родительского контекста тоже означает потерю интереса к результату
		if flightCtx.Err() != nil {
			return zero, ErrSuperseded
		}
		return zero, err
	}

	return result, nil
}
