package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string          `json:"date"`
	Slots    []AvailableSlot `json:"slots"`
	Degraded bool            `json:"degraded,omitempty"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	ID     string `json:"id"`    // "09-10"
	Label  string `json:"label"` // "09h00 - 10h00"
	Status string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:     slot.ID,
			Label:  slot.Label,
			Status: string(slot.Status),
		}
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date,
		Slots:    slots,
		Degraded: resp.Degraded,
	}
}
