package checkoutservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

const tenantHeader = "X-Tenant-ID"

// Client клиент для создания checkout-сессий через портал
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента сервиса сессий
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// CreateSession создает checkout-сессию в портале
// Проверка остатков выполняется на стороне сервиса: отказ по остаткам
// возвращается как StockError с дословным сообщением
func (c *Client) CreateSession(ctx context.Context, tenant string, checkoutReq *domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	start := time.Now()

	items := make([]sessionItem, len(checkoutReq.Items))
	for i, item := range checkoutReq.Items {
		items[i] = sessionItem{
			VariantID:           item.VariantID,
			Quantity:            item.Quantity,
			StripePriceID:       item.StripePriceID,
			UnitPriceMinorUnits: item.UnitPriceMinorUnits,
		}
	}

	payload, err := json.Marshal(sessionRequest{
		Items:         items,
		SuccessURL:    checkoutReq.SuccessURL,
		CancelURL:     checkoutReq.CancelURL,
		CustomerEmail: checkoutReq.CustomerEmail,
		OrderRef:      checkoutReq.OrderRef,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/api/checkout/sessions", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tenantHeader, tenant)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(start, err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
			// 4xx без разборчивого сообщения трактуем как недоступность
			c.observe(start, ErrUpstreamUnavailable)
			return nil, fmt.Errorf("%w: status %d with unreadable body", ErrUpstreamUnavailable, resp.StatusCode)
		}
		if errResp.Code == codeOutOfStock {
			c.observe(start, ErrOutOfStock)
			return nil, &StockError{Message: errResp.Message}
		}
		c.observe(start, ErrValidation)
		return nil, &ValidationError{Message: errResp.Message}
	default:
		c.observe(start, ErrUpstreamUnavailable)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var sessionResp sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sessionResp); err != nil {
		c.observe(start, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUpstreamUnavailable, err)
	}

	// Все три условия обязательны: HTTP успех, флаг success, непустой URL
	if !sessionResp.Success || sessionResp.CheckoutURL == "" {
		c.observe(start, ErrUpstreamUnavailable)
		return nil, fmt.Errorf("%w: incomplete session response (success=%v, url=%q)",
			ErrUpstreamUnavailable, sessionResp.Success, sessionResp.CheckoutURL)
	}

	c.observe(start, nil)

	return &domain.CheckoutSession{
		SessionID:     sessionResp.SessionID,
		CheckoutURL:   sessionResp.CheckoutURL,
		OrderID:       sessionResp.OrderID,
		AmountTotal:   sessionResp.AmountTotal,
		Currency:      sessionResp.Currency,
		CustomerEmail: checkoutReq.CustomerEmail,
		ExpiresAt:     sessionResp.ExpiresAt,
		CreatedAt:     time.Now(),
		Status:        domain.SessionPending,
	}, nil
}

func (c *Client) observe(start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveUpstreamRequest("checkout", "create_session", outcome, time.Since(start))
}
