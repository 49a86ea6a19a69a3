package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ResolveSlotStatuses статус каждого слота дня: booked важнее too_soon
func ResolveSlotStatuses(cat *catalog.Catalog, date time.Time, bookedIDs []string, now time.Time) []domain.SlotWithStatus {
	booked := make(map[string]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	slots := cat.Slots()
	result := make([]domain.SlotWithStatus, 0, len(slots))
	for _, slot := range slots {
		status := domain.SlotAvailable
		if _, ok := booked[slot.ID]; ok {
			status = domain.SlotBooked
		} else if cat.IsTooSoon(date, slot.ID, now) {
			status = domain.SlotTooSoon
		}
		result = append(result, domain.SlotWithStatus{TimeSlot: slot, Status: status})
	}
	return result
}
