package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается для неизвестного идентификатора сессии
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("sessions: internal error")
)
