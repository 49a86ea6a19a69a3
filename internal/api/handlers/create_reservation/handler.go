package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgSelectionMissing   = "Veuillez sélectionner un horaire au niveau du calendrier."
	msgTitlesMissing      = "Veuillez sélectionner au moins 1 titre."
	msgContactMissing     = "Veuillez remplir tous les champs obligatoires du formulaire."
	msgInvalidServiceType = "Type de service inconnu."
	msgInvalidTimeSlot    = "Les créneaux sélectionnés doivent se suivre."
	msgInvalidTitleCount  = "Nombre de titres invalide."
	msgInvalidDate        = "Date de réservation invalide."
	msgClosed             = "Le studio est fermé ce jour-là."
	msgDateTooFar         = "Cette date est trop éloignée pour une réservation."
	msgSlotNotAvailable   = "Un des créneaux sélectionnés vient d'être réservé. Veuillez en choisir un autre."
	msgTooLateToBook      = "Ce créneau commence trop tôt pour être réservé."
	msgSaveFailed         = "Erreur lors de l'enregistrement de la réservation. Veuillez réessayer."
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSelectionMissing):
			h.logger.Warn("POST /reservations - Selection missing: service=%s, date=%s", req.ServiceType, req.Date)
			handlers.RespondBadRequest(w, msgSelectionMissing)

		case errors.Is(err, createReservation.ErrTitlesMissing):
			h.logger.Warn("POST /reservations - Titles missing: service=%s", req.ServiceType)
			handlers.RespondBadRequest(w, msgTitlesMissing)

		case errors.Is(err, createReservation.ErrContactMissing):
			h.logger.Warn("POST /reservations - Contact fields missing")
			handlers.RespondBadRequest(w, msgContactMissing)

		case errors.Is(err, createReservation.ErrInvalidServiceType):
			h.logger.Warn("POST /reservations - Invalid service type: %q", req.ServiceType)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid slots: %v", req.SlotIDs)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrInvalidTitleCount):
			h.logger.Warn("POST /reservations - Invalid title count: %d", req.TitleCount)
			handlers.RespondBadRequest(w, msgInvalidTitleCount)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrStudioClosed):
			h.logger.Warn("POST /reservations - Studio closed: %s", req.Date)
			handlers.RespondBadRequest(w, msgClosed)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			h.logger.Warn("POST /reservations - Date too far in future: %s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: date=%s, slots=%v", req.Date, req.SlotIDs)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: date=%s, slots=%v", req.Date, req.SlotIDs)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: service=%s, date=%s, error=%v",
				req.ServiceType, req.Date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, service=%s, total=%d",
		result.Reservation.ID, result.Reservation.ServiceType, result.Reservation.TotalAmount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
