package create_booking

import (
	"errors"
	"net/http"

	"github.com/valle1212i/Glow-SessionService/internal/api/handlers"
	"github.com/valle1212i/Glow-SessionService/internal/api/middleware"
	"github.com/valle1212i/Glow-SessionService/internal/service/catalogcache"
	createBooking "github.com/valle1212i/Glow-SessionService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgCatalogNotLoaded   = "каталог услуг ещё загружается, повторите запрос"
	msgClosed             = "салон закрыт в выбранную дату"
	msgNotConfigured      = "часы работы не настроены"
	msgInvalidTimeSlot    = "выбранный слот вне рабочих часов"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgInvalidRequestData = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	catalog Catalog
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, catalog Catalog, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, _ := middleware.TenantFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.catalog.ServiceByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogcache.ErrNotLoaded) {
			h.logger.Warn("POST /bookings - Catalog snapshot not loaded yet")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogNotLoaded)
			return
		}
		h.logger.Error("POST /bookings - Catalog lookup failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if service == nil {
		h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenant, *service)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			// Проигранная гонка: слот заняли между показом и отправкой
			var conflictErr *createBooking.SlotConflictError
			resp := &ConflictResponse{Message: msgInvalidTimeSlot}
			if errors.As(err, &conflictErr) {
				resp.Message = conflictErr.Message
				resp.AlternativeSlots = conflictErr.AlternativeSlots
			}
			h.logger.Warn("POST /bookings - Slot conflict: provider_id=%s, date=%s, start=%s",
				req.ProviderID, req.Date, req.StartTime)
			handlers.RespondJSON(w, http.StatusConflict, resp)

		case errors.Is(err, createBooking.ErrValidation):
			var validationErr *createBooking.ValidationError
			msg := msgInvalidRequestData
			if errors.As(err, &validationErr) {
				msg = validationErr.Message
			}
			h.logger.Warn("POST /bookings - Portal rejected booking: provider_id=%s, error=%v", req.ProviderID, err)
			handlers.RespondBadRequest(w, msg)

		case errors.Is(err, createBooking.ErrCompanyClosed):
			h.logger.Warn("POST /bookings - Closed: provider_id=%s, date=%s", req.ProviderID, req.Date)
			handlers.RespondBadRequest(w, msgClosed)

		case errors.Is(err, createBooking.ErrNotConfigured):
			h.logger.Warn("POST /bookings - Hours not configured: provider_id=%s", req.ProviderID)
			handlers.RespondBadRequest(w, msgNotConfigured)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: provider_id=%s, start=%s", req.ProviderID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: provider_id=%s, start=%s", req.ProviderID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: provider_id=%s, date=%s", req.ProviderID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: provider_id=%s, error=%v", req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, provider_id=%s, date=%s, start=%s",
		result.ID, result.ProviderID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
