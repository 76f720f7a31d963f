package campaignservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const tenantHeader = "X-Tenant-ID"

// Client клиент для работы с сервисом кампанийных цен
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента сервиса кампаний
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

// GetCampaignPrice получает кампанийную цену по продукту и базовому price id
func (c *Client) GetCampaignPrice(ctx context.Context, tenant, productID, priceID string) (*CampaignPrice, error) {
	start := time.Now()

	reqURL := fmt.Sprintf("%s/api/campaign-prices/%s?priceId=%s",
		c.baseURL, url.PathEscape(productID), url.QueryEscape(priceID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tenantHeader, tenant)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(start, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.observe(start, nil)
		return nil, ErrNoCampaignPrice
	default:
		body, _ := io.ReadAll(resp.Body)
		c.observe(start, ErrInvalidResponse)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var price CampaignPrice
	if err := json.NewDecoder(resp.Body).Decode(&price); err != nil {
		c.observe(start, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe(start, nil)
	return &price, nil
}

// GetCampaignPriceWithGracefulDegradation получает кампанийную цену с graceful degradation
// При любой инфраструктурной ошибке (таймаут, 5xx, не-JSON ответ) возвращает
// ErrServiceDegraded: оркестратор checkout при этом использует базовую цену,
// сбой цен никогда не блокирует оплату
func (c *Client) GetCampaignPriceWithGracefulDegradation(ctx context.Context, tenant, productID, priceID string) (*CampaignPrice, error) {
	price, err := c.GetCampaignPrice(ctx, tenant, productID, priceID)
	if err != nil {
		// Отсутствие кампании - нормальный бизнес-результат, пробрасываем
		if errors.Is(err, ErrNoCampaignPrice) {
			return nil, err
		}

		// Для всех остальных ошибок применяем graceful degradation
		// Уровень ERROR, чтобы деградацию было видно оператору
		c.log.Error("CampaignService unavailable, applying graceful degradation for product=%s: %v", productID, err)
		return nil, fmt.Errorf("%w: product=%s, error=%v", ErrServiceDegraded, productID, err)
	}

	return price, nil
}

func (c *Client) observe(start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveUpstreamRequest("campaign", "get_campaign_price", outcome, time.Since(start))
}
