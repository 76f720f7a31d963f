package carttracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const tenantHeader = "X-Tenant-ID"

// Registration сводка сессии для трекинга брошенных корзин
type Registration struct {
	SessionID     string    `json:"sessionId"`
	Tenant        string    `json:"tenant"`
	AmountTotal   int64     `json:"amountTotal"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Client клиент для работы с трекером корзин
// Вызовы fire-and-forget: отказы никогда не влияют на результат checkout,
// но логируются как отдельная операционная проблема - молчаливый отказ
// выключает аналитику брошенных корзин для сессии
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента трекера корзин
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

// Register регистрирует созданную сессию для трекинга
func (c *Client) Register(ctx context.Context, tenant string, reg *Registration) error {
	return c.post(ctx, tenant, "register_session",
		fmt.Sprintf("%s/api/cart-tracking/sessions", c.baseURL), reg)
}

// Complete отмечает сессию завершенной (пользователь оплатил)
func (c *Client) Complete(ctx context.Context, tenant, sessionID string) error {
	return c.post(ctx, tenant, "complete_session",
		fmt.Sprintf("%s/api/cart-tracking/sessions/%s/complete", c.baseURL, url.PathEscape(sessionID)), struct{}{})
}

func (c *Client) post(ctx context.Context, tenant, operation, reqURL string, body interface{}) error {
	start := time.Now()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tenantHeader, tenant)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, start, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(resp.Body)
		c.observe(operation, start, ErrInvalidResponse)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(responseBody))
	}

	c.observe(operation, start, nil)
	return nil
}

func (c *Client) observe(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveUpstreamRequest("cart_tracker", operation, outcome, time.Since(start))
}
