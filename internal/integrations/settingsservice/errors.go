package settingsservice

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки бронирования не настроены в портале
	ErrSettingsNotFound = errors.New("settingsservice client: booking settings not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("settingsservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("settingsservice client: invalid response")
)
