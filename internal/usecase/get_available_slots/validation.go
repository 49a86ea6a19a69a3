package get_available_slots

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
)

// parseAndCheckDate проверяет, что дата входит в список бронируемых дней
func parseAndCheckDate(cat *catalog.Catalog, raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	day, err := cat.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if err := cat.CheckDate(day, now); err != nil {
		switch {
		case errors.Is(err, catalog.ErrDateInPast):
			return time.Time{}, ErrDateInPast
		case errors.Is(err, catalog.ErrDateClosed):
			return time.Time{}, ErrStudioClosed
		case errors.Is(err, catalog.ErrDateOutOfWindow):
			return time.Time{}, ErrDateTooFarInFuture
		default:
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
	}
	return day, nil
}
