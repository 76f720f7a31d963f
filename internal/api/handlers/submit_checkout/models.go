package submit_checkout

import (
	"github.com/valle1212i/Glow-SessionService/internal/domain"
	submitCheckout "github.com/valle1212i/Glow-SessionService/internal/usecase/submit_checkout"
)

// Машиночитаемые коды ошибок оформления заказа
const (
	codeMissingVariant      = "MISSING_VARIANT"
	codeOutOfStock          = "OUT_OF_STOCK"
	codeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	codeValidationError     = "VALIDATION_ERROR"
	codeNetworkError        = "NETWORK_ERROR"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
	SuccessURL    string         `json:"successUrl,omitempty"`
	CancelURL     string         `json:"cancelUrl,omitempty"`
}

// CheckoutItem позиция корзины
type CheckoutItem struct {
	ProductID     string `json:"productId,omitempty"`
	VariantID     string `json:"variantId,omitempty"`
	Quantity      int64  `json:"quantity"`
	StripePriceID string `json:"stripePriceId,omitempty"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId"`
	OrderID     string `json:"orderId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckoutRequest) ToUseCaseRequest(tenant, defaultSuccessURL, defaultCancelURL string) *submitCheckout.Request {
	items := make([]domain.CartItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.CartItem{
			ProductID:     item.ProductID,
			VariantID:     item.VariantID,
			Quantity:      item.Quantity,
			StripePriceID: item.StripePriceID,
		}
	}

	successURL := r.SuccessURL
	if successURL == "" {
		successURL = defaultSuccessURL
	}

	cancelURL := r.CancelURL
	if cancelURL == "" {
		cancelURL = defaultCancelURL
	}

	return &submitCheckout.Request{
		Tenant:        tenant,
		Items:         items,
		CustomerEmail: r.CustomerEmail,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{
		CheckoutURL: resp.CheckoutURL,
		SessionID:   resp.SessionID,
		OrderID:     resp.OrderID,
	}
}
