package stripecheckout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"
	stripeclient "github.com/stripe/stripe-go/v79/client"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client драйвер создания checkout-сессий напрямую в Stripe
// Используется для арендаторов без собственного checkout endpoint в портале;
// реализует тот же контракт SessionCreator, что и клиент портала.
// Ключ хранится в экземпляре API клиента, а не в глобальном stripe.Key -
// общее изменяемое состояние процесса здесь сознательно исключено
type Client struct {
	api *stripeclient.API
	log Logger
}

// NewClient создает новый экземпляр Stripe драйвера
func NewClient(secretKey string, log Logger) *Client {
	api := &stripeclient.API{}
	api.Init(secretKey, nil)

	return &Client{
		api: api,
		log: log,
	}
}

// CreateSession создает Stripe Checkout Session в режиме payment
func (c *Client) CreateSession(ctx context.Context, tenant string, checkoutReq *domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, len(checkoutReq.Items))
	for i, item := range checkoutReq.Items {
		lineItems[i] = &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.StripePriceID),
			Quantity: stripe.Int64(item.Quantity),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(checkoutReq.SuccessURL),
		CancelURL:         stripe.String(checkoutReq.CancelURL),
		ClientReferenceID: stripe.String(checkoutReq.OrderRef),
		LineItems:         lineItems,
	}
	params.Context = ctx
	if checkoutReq.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(checkoutReq.CustomerEmail)
	}
	if checkoutReq.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(checkoutReq.IdempotencyKey)
	}
	// Тенант сохраняем в метаданных сессии, чтобы webhooks портала
	// могли сопоставить платеж с арендатором
	params.AddMetadata("tenant", tenant)

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, c.mapError(err)
	}

	if sess.URL == "" {
		return nil, fmt.Errorf("%w: session created without redirect URL", ErrUpstreamUnavailable)
	}

	return &domain.CheckoutSession{
		SessionID:     sess.ID,
		CheckoutURL:   sess.URL,
		OrderID:       checkoutReq.OrderRef,
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		CustomerEmail: checkoutReq.CustomerEmail,
		ExpiresAt:     time.Unix(sess.ExpiresAt, 0),
		CreatedAt:     time.Now(),
		Status:        domain.SessionPending,
	}, nil
}

// mapError мапит ошибки Stripe API на сигнальные ошибки драйвера
func (c *Client) mapError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch stripeErr.Type {
		case stripe.ErrorTypeInvalidRequest, stripe.ErrorTypeCard:
			return &ValidationError{Message: stripeErr.Msg}
		default:
			return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, stripeErr.Msg)
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
