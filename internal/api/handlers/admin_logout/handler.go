package admin_logout

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(w)

	h.logger.Info("POST /admin/logout - Admin signed out from %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
