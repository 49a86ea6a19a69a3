package create_reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// buildSelection восстанавливает выбор клиента из запроса
func buildSelection(req *Request) (domain.Selection, error) {
	switch {
	case req.ServiceType == domain.ServiceHourly:
		sel, err := domain.NewHourlySelection(req.Date, req.SlotIDs)
		if err != nil {
			return domain.Selection{}, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}
		return sel, nil

	case req.ServiceType.IsTitleBased():
		if req.TitleCount > domain.MaxTitleCount {
			return domain.Selection{}, fmt.Errorf("%w: %d not in [%d, %d]",
				ErrInvalidTitleCount, req.TitleCount, domain.MinTitleCount, domain.MaxTitleCount)
		}
		return domain.NewTitleSelection(req.ServiceType, req.TitleCount)

	default:
		return domain.Selection{}, fmt.Errorf("%w: %q", ErrInvalidServiceType, req.ServiceType)
	}
}

// resolveDate дата бронирования: выбранная для hourly, сегодняшняя для остальных
func resolveDate(cat *catalog.Catalog, sel domain.Selection, now time.Time) (time.Time, error) {
	run, ok := sel.Run()
	if !ok {
		return cat.Today(now), nil
	}

	day, err := cat.ParseDate(run.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if err := cat.CheckDate(day, now); err != nil {
		switch {
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

// checkLeadTime проверяет, что все слоты начинаются не раньше минимального запаса
func checkLeadTime(cat *catalog.Catalog, day time.Time, slotIDs []string, now time.Time) error {
	for _, id := range slotIDs {
		if cat.IsTooSoon(day, id, now) {
			return fmt.Errorf("%w: %s", ErrTooLateToBook, id)
		}
	}
	return nil
}

// checkConflicts проверяет, что ни один слот не занят
func checkConflicts(booked []string, slotIDs []string) error {
	taken := make(map[string]struct{}, len(booked))
	for _, id := range booked {
		taken[id] = struct{}{}
	}

	var conflicts []string
	for _, id := range slotIDs {
		if _, ok := taken[id]; ok {
			conflicts = append(conflicts, id)
		}
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotAvailable, strings.Join(conflicts, ", "))
	}
	return nil
}

func trimContact(c domain.Contact) domain.Contact {
	return domain.Contact{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Message: strings.TrimSpace(c.Message),
	}
}
