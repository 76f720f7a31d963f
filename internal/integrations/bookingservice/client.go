package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

const tenantHeader = "X-Tenant-ID"

// Client клиент для работы с booking-сервисами портала:
// услуги и мастера (публичные), availability мастера, список и создание бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента booking-сервисов
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

// ListServices получает список активных услуг (публичный endpoint, без авторизации)
func (c *Client) ListServices(ctx context.Context, tenant string) ([]Service, error) {
	reqURL := fmt.Sprintf("%s/api/booking/services", c.baseURL)

	var resp servicesResponse
	if err := c.getJSON(ctx, tenant, "list_services", reqURL, &resp); err != nil {
		return nil, err
	}

	return resp.Services, nil
}

// ListProviders получает список активных мастеров (публичный endpoint, без авторизации)
func (c *Client) ListProviders(ctx context.Context, tenant string) ([]Provider, error) {
	reqURL := fmt.Sprintf("%s/api/booking/providers", c.baseURL)

	var resp providersResponse
	if err := c.getJSON(ctx, tenant, "list_providers", reqURL, &resp); err != nil {
		return nil, err
	}

	return resp.Providers, nil
}

// GetProviderAvailability получает слоты мастера на дату от портала
// 404/501 означают, что endpoint не реализован для этого портала:
// резолвер в этом случае переходит к локальной генерации слотов
func (c *Client) GetProviderAvailability(ctx context.Context, tenant, providerID string, date time.Time, durationMinutes int) (*ProviderAvailability, error) {
	start := time.Now()

	reqURL := fmt.Sprintf("%s/api/booking/providers/%s/availability?date=%s&duration=%d",
		c.baseURL, url.PathEscape(providerID), date.Format(domain.DateFormat), durationMinutes)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tenantHeader, tenant)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("get_provider_availability", start, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound, http.StatusNotImplemented:
		c.observe("get_provider_availability", start, ErrAvailabilityNotSupported)
		return nil, ErrAvailabilityNotSupported
	default:
		body, _ := io.ReadAll(resp.Body)
		c.observe("get_provider_availability", start, ErrInvalidResponse)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var availability ProviderAvailability
	if err := json.NewDecoder(resp.Body).Decode(&availability); err != nil {
		c.observe("get_provider_availability", start, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe("get_provider_availability", start, nil)
	return &availability, nil
}

// ListBookings получает бронирования за период, опционально по мастеру
// Статусы не фильтруются на стороне портала: вызывающий код обязан
// исключить отмененные бронирования перед расчетом пересечений
func (c *Client) ListBookings(ctx context.Context, tenant string, from, to time.Time, providerID string) ([]Booking, error) {
	reqURL := fmt.Sprintf("%s/api/bookings?from=%s&to=%s",
		c.baseURL, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	if providerID != "" {
		reqURL += "&providerId=" + url.QueryEscape(providerID)
	}

	var resp bookingsResponse
	if err := c.getJSON(ctx, tenant, "list_bookings", reqURL, &resp); err != nil {
		return nil, err
	}

	return resp.Bookings, nil
}

// CreateBooking создает бронирование в портале
// 409 мапится в ConflictError с деталями (включая альтернативные слоты),
// 4xx с сообщением - в ValidationError
func (c *Client) CreateBooking(ctx context.Context, tenant string, bookingReq *CreateBookingRequest) (*Booking, error) {
	start := time.Now()

	reqURL := fmt.Sprintf("%s/api/bookings", c.baseURL)

	payload, err := json.Marshal(bookingReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tenantHeader, tenant)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("create_booking", start, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusConflict:
		var conflict conflictResponse
		if err := json.NewDecoder(resp.Body).Decode(&conflict); err != nil {
			conflict.Message = "slot is no longer available"
		}
		c.observe("create_booking", start, ErrSlotConflict)
		return nil, &ConflictError{
			Message:          conflict.Message,
			AlternativeSlots: conflict.AlternativeSlots,
		}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
			errResp.Message = fmt.Sprintf("request rejected with status %d", resp.StatusCode)
		}
		c.observe("create_booking", start, ErrValidation)
		return nil, &ValidationError{Message: errResp.Message}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.observe("create_booking", start, ErrInvalidResponse)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		c.observe("create_booking", start, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe("create_booking", start, nil)
	return &booking, nil
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

	if resp.StatusCode != http.StatusOK {
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
	c.metrics.ObserveUpstreamRequest("booking", operation, outcome, time.Since(start))
}
