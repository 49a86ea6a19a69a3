package get_dates

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type DateCatalog interface {
	Dates(now time.Time) []domain.DateOption
}

type Logger interface {
	Info(format string, v ...interface{})
}
