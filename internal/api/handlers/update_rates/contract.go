package update_rates

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/rates/models"
)

type RatesService interface {
	Update(ctx context.Context, req *models.UpdateRatesRequest) (*models.RatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
