package refresh_catalog

import (
	"net/http"

	"github.com/valle1212i/Glow-SessionService/internal/api/handlers"
)

// Refresher запускает внеочередное обновление снимка каталога
type Refresher interface {
	Kick()
}

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	catalog Refresher
	logger  Logger
}

func NewHandler(catalog Refresher, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle POST /api/v1/catalog/refresh
// Вызывается клиентом при возврате видимости вкладки или фокуса окна.
// Обновление идет в фоне, ответ не дожидается результата
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.catalog.Kick()

	h.logger.Info("POST /catalog/refresh - Refresh requested")
	handlers.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "refresh scheduled"})
}
