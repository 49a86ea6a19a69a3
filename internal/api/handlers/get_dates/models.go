package get_dates

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []DateOption `json:"dates"`
}

// DateOption день календаря
type DateOption struct {
	Date    string `json:"date"`    // "2026-10-20"
	Day     int    `json:"day"`     // 20
	Month   string `json:"month"`   // "oct."
	Weekday string `json:"weekday"` // "mar."
}

func fromDomain(dates []domain.DateOption) *DatesResponse {
	items := make([]DateOption, len(dates))
	for i, d := range dates {
		items[i] = DateOption{Date: d.Date, Day: d.Day, Month: d.Month, Weekday: d.Weekday}
	}
	return &DatesResponse{Dates: items}
}
