package get_rates

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

type Handler struct {
	service RatesService
	logger  Logger
}

func NewHandler(service RatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rates, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /rates - Failed to get rates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rates - Rates retrieved (default=%t)", rates.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, rates)
}
