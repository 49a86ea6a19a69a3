package update_rates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/rates"
	"github.com/m04kA/SMC-StudioBooking/internal/service/rates/models"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgInvalidData        = "Les tarifs doivent être des montants positifs."
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

// Handle PUT /api/v1/admin/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/rates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrInvalidInput):
			h.logger.Warn("PUT /admin/rates - Invalid rates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/rates - Failed to update rates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/rates - Rates updated: hourly=%d, mix=%d, master=%d",
		updated.Hourly, updated.Mix, updated.Master)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
