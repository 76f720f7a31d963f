package submit_checkout

import (
	"errors"
	"net/http"

	"github.com/valle1212i/Glow-SessionService/internal/api/handlers"
	"github.com/valle1212i/Glow-SessionService/internal/api/middleware"
	submitCheckout "github.com/valle1212i/Glow-SessionService/internal/usecase/submit_checkout"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequestData = "некорректные данные заказа"
	msgMissingVariant     = "не удалось определить вариант товара"
	msgUpstreamFailure    = "платежный сервис временно недоступен, попробуйте позже"
	msgNetworkFailure     = "не удалось связаться с платежным сервисом, попробуйте позже"
)

type Handler struct {
	useCase SubmitCheckoutUseCase
	logger  Logger

	// URL-ы возврата по умолчанию из конфигурации
	defaultSuccessURL string
	defaultCancelURL  string
}

func NewHandler(useCase SubmitCheckoutUseCase, defaultSuccessURL, defaultCancelURL string, logger Logger) *Handler {
	return &Handler{
		useCase:           useCase,
		logger:            logger,
		defaultSuccessURL: defaultSuccessURL,
		defaultCancelURL:  defaultCancelURL,
	}
}

// Handle POST /api/v1/checkout/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, _ := middleware.TenantFromContext(r.Context())

	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest(tenant, h.defaultSuccessURL, h.defaultCancelURL)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitCheckout.ErrMissingVariant):
			var missingErr *submitCheckout.MissingVariantError
			msg := msgMissingVariant
			if errors.As(err, &missingErr) {
				msg = missingErr.Error()
			}
			h.logger.Warn("POST /checkout/sessions - Missing variants: %v", err)
			handlers.RespondErrorWithCode(w, http.StatusBadRequest, codeMissingVariant, msg)

		case errors.Is(err, submitCheckout.ErrOutOfStock):
			// Сообщение об остатках приходит от бэкенда и пробрасывается дословно
			var stockErr *submitCheckout.OutOfStockError
			msg := msgInvalidRequestData
			if errors.As(err, &stockErr) {
				msg = stockErr.Message
			}
			h.logger.Warn("POST /checkout/sessions - Out of stock: %v", err)
			handlers.RespondErrorWithCode(w, http.StatusConflict, codeOutOfStock, msg)

		case errors.Is(err, submitCheckout.ErrValidation):
			var validationErr *submitCheckout.ValidationError
			msg := msgInvalidRequestData
			if errors.As(err, &validationErr) {
				msg = validationErr.Message
			}
			h.logger.Warn("POST /checkout/sessions - Validation failed: %v", err)
			handlers.RespondErrorWithCode(w, http.StatusBadRequest, codeValidationError, msg)

		case errors.Is(err, submitCheckout.ErrNetwork):
			h.logger.Error("POST /checkout/sessions - Network failure: %v", err)
			handlers.RespondErrorWithCode(w, http.StatusBadGateway, codeNetworkError, msgNetworkFailure)

		case errors.Is(err, submitCheckout.ErrUpstreamUnavailable):
			h.logger.Error("POST /checkout/sessions - Upstream unavailable: %v", err)
			handlers.RespondErrorWithCode(w, http.StatusBadGateway, codeUpstreamUnavailable, msgUpstreamFailure)

		case errors.Is(err, submitCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout/sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("POST /checkout/sessions - Failed to submit checkout: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/sessions - Session created: session_id=%s, tenant=%s", result.SessionID, tenant)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
