package complete_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/valle1212i/Glow-SessionService/internal/api/handlers"
	"github.com/valle1212i/Glow-SessionService/internal/api/middleware"
	"github.com/valle1212i/Glow-SessionService/internal/service/sessions"
)

const (
	msgMissingSessionID = "ID сессии обязателен"
	msgSessionNotFound  = "сессия не найдена"
)

// CompleteSessionResponse HTTP response model
type CompleteSessionResponse struct {
	SessionID   string `json:"sessionId"`
	Status      string `json:"status"`
	CompletedAt string `json:"completedAt"`
}

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/checkout/sessions/{sessionId}/complete
// Вызывается со страницы успешной оплаты и закрывает жизненный цикл
// сессии: pending -> completed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, _ := middleware.TenantFromContext(r.Context())

	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("POST /checkout/sessions/{id}/complete - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	session, err := h.sessions.Complete(r.Context(), tenant, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /checkout/sessions/{id}/complete - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /checkout/sessions/{id}/complete - Failed to complete session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/sessions/{id}/complete - Session completed: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, &CompleteSessionResponse{
		SessionID:   session.SessionID,
		Status:      string(session.Status),
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
