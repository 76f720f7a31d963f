package catalogcache

import "errors"

var (
	// ErrNotLoaded возвращается, пока первый снимок каталога ещё не загружен
	ErrNotLoaded = errors.New("catalogcache: snapshot not loaded yet")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalogcache: internal error")
)
