package domain

import "fmt"

// SlotStatus availability of a time slot for a given date
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotTooSoon   SlotStatus = "too_soon"
)

// TimeSlot one bookable studio hour
type TimeSlot struct {
	ID        string // "09-10"
	Label     string // "09h00 - 10h00"
	StartHour int
	EndHour   int // 24 for the last slot of the day
}

// StartLabel returns the "09h00" part of the label
func (s TimeSlot) StartLabel() string {
	return fmt.Sprintf("%02dh00", s.StartHour)
}

// EndLabel returns the "10h00" part of the label, midnight is "00h00"
func (s TimeSlot) EndLabel() string {
	return fmt.Sprintf("%02dh00", s.EndHour%24)
}

// SlotWithStatus a time slot resolved against the reservations of a date
type SlotWithStatus struct {
	TimeSlot
	Status SlotStatus
}

// DateOption a selectable calendar day
type DateOption struct {
	Date    string // YYYY-MM-DD
	Day     int
	Month   string // "oct."
	Weekday string // "lun."
}

const (
	firstSlotHour = 8
	lastSlotHour  = 23
)

var timeSlots = buildTimeSlots()

func buildTimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		slot := TimeSlot{
			ID:        fmt.Sprintf("%02d-%02d", h, (h+1)%24),
			StartHour: h,
			EndHour:   h + 1,
		}
		slot.Label = slot.StartLabel() + " - " + slot.EndLabel()
		slots = append(slots, slot)
	}
	return slots
}

// TimeSlots returns a copy of the ordered daily slots, 08-09 through 23-00
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// SlotIndex returns the position of id in the daily order, -1 if unknown
func SlotIndex(id string) int {
	for i, s := range timeSlots {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// LookupSlot finds a slot by id
func LookupSlot(id string) (TimeSlot, bool) {
	if i := SlotIndex(id); i >= 0 {
		return timeSlots[i], true
	}
	return TimeSlot{}, false
}
