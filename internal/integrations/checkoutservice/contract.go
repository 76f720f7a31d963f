package checkoutservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для метрик upstream-вызовов (может быть nil)
type MetricsObserver interface {
	ObserveUpstreamRequest(upstream, operation, outcome string, duration time.Duration)
}
