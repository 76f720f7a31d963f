package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// tenantHeader заголовок идентификатора арендатора
// Сервис мульти-тенантный: значение прокидывается из входящего запроса,
// никогда не захардкожено
const tenantHeader = "X-Tenant-ID"

// Client клиент для работы с каталогом портала
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента каталога
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

// ListProducts получает список продуктов с вариантами
func (c *Client) ListProducts(ctx context.Context, tenant string) ([]Product, error) {
	reqURL := fmt.Sprintf("%s/api/products", c.baseURL)

	var resp productsResponse
	if err := c.getJSON(ctx, tenant, "list_products", reqURL, &resp); err != nil {
		return nil, err
	}

	return resp.Products, nil
}

// GetProduct получает продукт по идентификатору
func (c *Client) GetProduct(ctx context.Context, tenant, productID string) (*Product, error) {
	reqURL := fmt.Sprintf("%s/api/products/%s", c.baseURL, url.PathEscape(productID))

	var product Product
	if err := c.getJSON(ctx, tenant, "get_product", reqURL, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, tenant, operation, reqURL string, dst interface{}) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
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

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.observe(operation, start, ErrProductNotFound)
		return ErrProductNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.observe(operation, start, ErrInvalidResponse)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		c.observe(operation, start, err)
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
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
	c.metrics.ObserveUpstreamRequest("catalog", operation, outcome, time.Since(start))
}
