package domain

import "time"

// CartItem позиция корзины на момент отправки checkout
// VariantID (артикул) обязателен при создании сессии: если он не заполнен,
// оркестратор разрешает его через каталог до отправки
type CartItem struct {
	ProductID           string
	VariantID           string
	Quantity            int64
	UnitPriceMinorUnits int64
	StripePriceID       string
	CampaignPriceID     string
	HasCampaign         bool
}

// SessionStatus статус жизненного цикла checkout-сессии
// pending -> completed управляется redirect-вызовом трекинга,
// pending -> abandoned определяется внешним сервисом по таймауту
type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// CheckoutSession созданная платежная сессия
type CheckoutSession struct {
	SessionID     string
	CheckoutURL   string
	OrderID       string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	ExpiresAt     time.Time
	CreatedAt     time.Time
	Status        SessionStatus
}

// CheckoutRequest запрос на создание платежной сессии
// Общий для обоих драйверов (портал и Stripe)
type CheckoutRequest struct {
	Items          []CartItem
	SuccessURL     string
	CancelURL      string
	CustomerEmail  string
	OrderRef       string // Ссылка заказа, генерируется оркестратором
	IdempotencyKey string
}
