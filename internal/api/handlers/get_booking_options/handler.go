package get_booking_options

import (
	"errors"
	"net/http"
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/api/handlers"
	"github.com/valle1212i/Glow-SessionService/internal/service/catalogcache"
)

const msgCatalogNotLoaded = "каталог услуг ещё загружается, повторите запрос"

// BookingOptionsResponse HTTP response model
type BookingOptionsResponse struct {
	Services  []ServiceOption  `json:"services"`
	Providers []ProviderOption `json:"providers"`
	UpdatedAt string           `json:"updatedAt"`
}

// ServiceOption услуга для выбора при бронировании
type ServiceOption struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ProviderOption мастер для выбора при бронировании
type ProviderOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-options
// Отдает снимок кэша: обновление идет фоновым опросом, запрос
// никогда не ходит в портал напрямую
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap, err := h.catalog.Snapshot()
	if err != nil {
		if errors.Is(err, catalogcache.ErrNotLoaded) {
			h.logger.Warn("GET /booking-options - Catalog snapshot not loaded yet")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogNotLoaded)
			return
		}
		h.logger.Error("GET /booking-options - Failed to read snapshot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	services := make([]ServiceOption, len(snap.Services))
	for i, s := range snap.Services {
		services[i] = ServiceOption{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
		}
	}

	providers := make([]ProviderOption, len(snap.Providers))
	for i, p := range snap.Providers {
		providers[i] = ProviderOption{
			ID:   p.ID,
			Name: p.Name,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, &BookingOptionsResponse{
		Services:  services,
		Providers: providers,
		UpdatedAt: snap.UpdatedAt.UTC().Format(time.RFC3339),
	})
}
