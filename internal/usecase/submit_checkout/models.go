package submit_checkout

import (
	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

const (
	maxCartItems       = 50
	maxQuantityPerItem = 20
)

// Request входные параметры оформления заказа
type Request struct {
	Tenant        string
	Items         []domain.CartItem
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// Response результат оформления заказа
type Response struct {
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId"`
	OrderID     string `json:"orderId,omitempty"`
}
