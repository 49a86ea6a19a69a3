package get_dates

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

type Handler struct {
	catalog DateCatalog
	now     func() time.Time
	logger  Logger
}

func NewHandler(catalog DateCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		now:     time.Now,
		logger:  logger,
	}
}

// Handle GET /api/v1/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dates := h.catalog.Dates(h.now())

	h.logger.Info("GET /dates - %d dates generated", len(dates))
	handlers.RespondJSON(w, http.StatusOK, fromDomain(dates))
}
