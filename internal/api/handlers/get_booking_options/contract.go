package get_booking_options

import (
	"github.com/valle1212i/Glow-SessionService/internal/service/catalogcache"
)

// Catalog последний опубликованный снимок услуг и мастеров
type Catalog interface {
	Snapshot() (*catalogcache.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
