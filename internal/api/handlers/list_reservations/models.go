package list_reservations

import "github.com/m04kA/SMC-StudioBooking/internal/service/reservations/models"

// ToServiceRequest собирает фильтры из query параметров, пустые значения игнорируются
func ToServiceRequest(status, date string) *models.ListReservationsRequest {
	req := &models.ListReservationsRequest{}
	if status != "" {
		req.Status = &status
	}
	if date != "" {
		req.Date = &date
	}
	return req
}
