package checkoutservice

import "time"

// sessionItem позиция заказа в формате сервиса сессий
type sessionItem struct {
	VariantID           string `json:"variantId"`
	Quantity            int64  `json:"quantity"`
	StripePriceID       string `json:"stripePriceId"`
	UnitPriceMinorUnits int64  `json:"unitPriceMinorUnits"`
}

// sessionRequest запрос на создание checkout-сессии
type sessionRequest struct {
	Items         []sessionItem `json:"items"`
	SuccessURL    string        `json:"successUrl"`
	CancelURL     string        `json:"cancelUrl"`
	CustomerEmail string        `json:"customerEmail,omitempty"`
	OrderRef      string        `json:"orderRef,omitempty"`
}

// sessionResponse ответ сервиса сессий
// Успех требует одновременно: HTTP 2xx, Success=true и непустой CheckoutURL
type sessionResponse struct {
	Success     bool      `json:"success"`
	CheckoutURL string    `json:"checkoutUrl"`
	SessionID   string    `json:"sessionId"`
	OrderID     string    `json:"orderId"`
	AmountTotal int64     `json:"amountTotal"`
	Currency    string    `json:"currency"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// errorResponse тело ответа с ошибкой
// Code "OUT_OF_STOCK" выделяет авторитетный отказ по остаткам
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const codeOutOfStock = "OUT_OF_STOCK"
