package update_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	updateSelection "github.com/m04kA/SMC-StudioBooking/internal/usecase/update_selection"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgInvalidState       = "Sélection invalide. Veuillez recommencer."
	msgInvalidAction      = "Action invalide pour ce service."
	msgDateRequired       = "Veuillez d'abord sélectionner une date."
	msgInvalidDate        = "Cette date n'est pas disponible."
	msgSlotNotAvailable   = "Ce créneau n'est plus disponible."
)

type Handler struct {
	useCase UpdateSelectionUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, updateSelection.ErrInvalidState):
			handlers.RespondBadRequest(w, msgInvalidState)

		case errors.Is(err, updateSelection.ErrInvalidAction):
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, updateSelection.ErrDateRequired):
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, updateSelection.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, updateSelection.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /selection - Failed to update selection: action=%s, error=%v", req.Action.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
