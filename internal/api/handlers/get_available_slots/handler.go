package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/valle1212i/Glow-SessionService/internal/api/handlers"
	"github.com/valle1212i/Glow-SessionService/internal/api/middleware"
	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/internal/service/availability"
	"github.com/valle1212i/Glow-SessionService/internal/service/catalogcache"
	resolveAvailability "github.com/valle1212i/Glow-SessionService/internal/usecase/resolve_availability"
)

const (
	msgMissingProviderID  = "ID мастера обязателен"
	msgMissingServiceID   = "ID услуги обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound    = "услуга не найдена"
	msgCatalogNotLoaded   = "каталог услуг ещё загружается, повторите запрос"
	msgRequestSuperseded  = "запрос вытеснен более новым выбором"
	msgInvalidRequestData = "некорректные параметры запроса"
)

// HeaderClientSession заголовок клиентской сессии для вытеснения
// устаревших запросов доступности
const HeaderClientSession = "X-Session-ID"

type Handler struct {
	useCase     ResolveAvailabilityUseCase
	catalog     Catalog
	coordinator Coordinator
	logger      Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, catalog Catalog, coordinator Coordinator, logger Logger) *Handler {
	return &Handler{
		useCase:     useCase,
		catalog:     catalog,
		coordinator: coordinator,
		logger:      logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, _ := middleware.TenantFromContext(r.Context())

	providerID := mux.Vars(r)["providerId"]
	if providerID == "" {
		h.logger.Warn("GET /providers/{id}/available-slots - Missing provider ID")
		handlers.RespondBadRequest(w, msgMissingProviderID)
		return
	}

	serviceID := r.URL.Query().Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /providers/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /providers/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Длительность услуги берется из снимка каталога
	service, err := h.catalog.ServiceByID(serviceID)
	if err != nil {
		if errors.Is(err, catalogcache.ErrNotLoaded) {
			h.logger.Warn("GET /providers/{id}/available-slots - Catalog snapshot not loaded yet")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogNotLoaded)
			return
		}
		h.logger.Error("GET /providers/{id}/available-slots - Catalog lookup failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if service == nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Service not found: service_id=%s", serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}

	// Клиентская сессия определяет, чьи устаревшие запросы вытесняются.
	// Без заголовка каждый запрос живет сам по себе
	clientID := r.Header.Get(HeaderClientSession)
	if clientID == "" {
		clientID = uuid.NewString()
	}

	useCaseReq := &resolveAvailability.Request{
		Tenant:     tenant,
		ProviderID: providerID,
		Service:    *service,
		Date:       date,
	}

	sel := availability.Selection{ProviderID: providerID, ServiceID: serviceID, Date: dateStr}
	result, err := h.coordinator.Resolve(r.Context(), clientID, sel, func(ctx context.Context) (*resolveAvailability.Response, error) {
		return h.useCase.Execute(ctx, useCaseReq)
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSuperseded):
			h.logger.Info("GET /providers/{id}/available-slots - Superseded: provider_id=%s, service_id=%s, date=%s",
				providerID, serviceID, dateStr)
			handlers.RespondError(w, http.StatusConflict, msgRequestSuperseded)

		case errors.Is(err, resolveAvailability.ErrClosed):
			h.logger.Info("GET /providers/{id}/available-slots - Closed: provider_id=%s, date=%s", providerID, dateStr)
			handlers.RespondJSON(w, http.StatusOK, emptyResponse(date, providerID, serviceID, statusClosed))

		case errors.Is(err, resolveAvailability.ErrNotConfigured):
			h.logger.Warn("GET /providers/{id}/available-slots - Hours not configured: provider_id=%s", providerID)
			handlers.RespondJSON(w, http.StatusOK, emptyResponse(date, providerID, serviceID, statusNotConfigured))

		case errors.Is(err, resolveAvailability.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("GET /providers/{id}/available-slots - Failed to resolve availability: provider_id=%s, service_id=%s, error=%v",
				providerID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/available-slots - Slots resolved: provider_id=%s, service_id=%s, date=%s, slots_count=%d",
		providerID, serviceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
