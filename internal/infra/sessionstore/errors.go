package sessionstore

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessionstore: session not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("sessionstore: internal error")
)
