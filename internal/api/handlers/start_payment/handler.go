package start_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	startPayment "github.com/m04kA/SMC-StudioBooking/internal/usecase/start_payment"
)

const (
	msgInvalidID          = "Identifiant de réservation invalide."
	msgNotFound           = "Réservation introuvable."
	msgCancelled          = "Cette réservation a été annulée."
	msgPaymentUnavailable = "Le paiement en ligne est momentanément indisponible. Veuillez utiliser Wave ou nous contacter."
)

type Handler struct {
	useCase StartPaymentUseCase
	logger  Logger
}

func NewHandler(useCase StartPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.useCase.Execute(r.Context(), &startPayment.Request{ReservationID: id})
	if err != nil {
		switch {
		case errors.Is(err, startPayment.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/payment - Invalid reservation ID: %q", id)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, startPayment.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/payment - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, startPayment.ErrReservationCancelled):
			h.logger.Warn("POST /reservations/{id}/payment - Reservation cancelled: id=%s", id)
			handlers.RespondConflict(w, msgCancelled)

		case errors.Is(err, startPayment.ErrPaymentUnavailable):
			h.logger.Error("POST /reservations/{id}/payment - Payment provider failed: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /reservations/{id}/payment - Failed to start payment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/payment - Payment started: id=%s, amount=%d", id, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
