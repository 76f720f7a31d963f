package campaignservice

import "errors"

var (
	// ErrNoCampaignPrice возвращается, когда для продукта нет кампанийной цены
	ErrNoCampaignPrice = errors.New("campaignservice client: no campaign price")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("campaignservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("campaignservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис кампаний недоступен и следует использовать базовую цену
	ErrServiceDegraded = errors.New("campaignservice unavailable: graceful degradation applied")
)
