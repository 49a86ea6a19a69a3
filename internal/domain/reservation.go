package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid reports whether s is a known status
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Contact client details collected by the booking form
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Reservation a persisted studio booking
type Reservation struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Message     string
	Date        time.Time // hourly: the booked day, otherwise the submission day
	Slots       []string  // hourly only
	ServiceType ServiceType
	TitleCount  *int // mix and master only
	Hours       *int // hourly only
	TotalAmount int64
	Status      ReservationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// OccupiesSlots returns true if the reservation blocks calendar slots
func (r *Reservation) OccupiesSlots() bool {
	return r.ServiceType == ServiceHourly && !r.IsCancelled()
}

// PaymentAmount amount requested online: a deposit for hourly sessions, the full price otherwise
func (r *Reservation) PaymentAmount() int64 {
	if r.ServiceType == ServiceHourly {
		return r.TotalAmount * DepositPercent / 100
	}
	return r.TotalAmount
}

// ReservationFilter filter for admin listings
type ReservationFilter struct {
	Status    *ReservationStatus
	StartDate *time.Time // inclusive
	EndDate   *time.Time // inclusive
}

// ReservationStats aggregate over a period, cancelled reservations excluded
type ReservationStats struct {
	Period     string // "octobre 2026"
	Count      int
	TotalHours int
	Revenue    int64
}

// BookedSlotIDs union of the slots held by reservations that occupy the calendar
func BookedSlotIDs(reservations []*Reservation) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, r := range reservations {
		if !r.OccupiesSlots() {
			continue
		}
		for _, id := range r.Slots {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
