// Package catalog calendar of the studio: bookable dates and daily time slots.
// Everything here is pure and depends only on the "now" passed in.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("catalog: invalid date")

	// ErrDateInPast дата раньше сегодняшнего дня
	ErrDateInPast = errors.New("catalog: date is in the past")

	// ErrDateClosed студия закрыта в этот день недели
	ErrDateClosed = errors.New("catalog: studio is closed on this day")

	// ErrDateOutOfWindow дата за пределами окна бронирования
	ErrDateOutOfWindow = errors.New("catalog: date is outside the booking window")
)

// GenerateDates walks forward from today (inclusive) and returns the first
// count days that do not fall on excluded.
func GenerateDates(today time.Time, count int, excluded time.Weekday) []domain.DateOption {
	dates := make([]domain.DateOption, 0, count)
	day := startOfDay(today)
	for len(dates) < count {
		if day.Weekday() != excluded {
			dates = append(dates, domain.DateOption{
				Date:    day.Format(domain.DateFormat),
				Day:     day.Day(),
				Month:   MonthShort(day.Month()),
				Weekday: WeekdayShort(day.Weekday()),
			})
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// BaseTimeSlots ordered daily slots 08-09 .. 23-00
func BaseTimeSlots() []domain.TimeSlot {
	return domain.TimeSlots()
}

// IndexOf position of the slot in daily order, -1 when unknown
func IndexOf(slotID string) int {
	return domain.SlotIndex(slotID)
}

// SlotByID finds a slot by id
func SlotByID(slotID string) (domain.TimeSlot, bool) {
	return domain.LookupSlot(slotID)
}

// StartOf moment the slot starts on the given day, in the day's location
func StartOf(day time.Time, slotID string) (time.Time, error) {
	slot, ok := domain.LookupSlot(slotID)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", domain.ErrUnknownSlot, slotID)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), slot.StartHour, 0, 0, 0, day.Location()), nil
}

// Catalog binds the calendar rules of one studio
type Catalog struct {
	loc        *time.Location
	windowDays int
	closed     time.Weekday
	minLead    time.Duration
}

func New(loc *time.Location, windowDays int, closed time.Weekday, minLead time.Duration) *Catalog {
	if loc == nil {
		loc = time.UTC
	}
	if windowDays <= 0 {
		windowDays = domain.DefaultBookingWindowDays
	}
	return &Catalog{
		loc:        loc,
		windowDays: windowDays,
		closed:     closed,
		minLead:    minLead,
	}
}

// Location таймзона студии
func (c *Catalog) Location() *time.Location {
	return c.loc
}

// MinLead минимальный запас времени до начала слота
func (c *Catalog) MinLead() time.Duration {
	return c.minLead
}

// Dates bookable days starting from now's day in the studio timezone
func (c *Catalog) Dates(now time.Time) []domain.DateOption {
	return GenerateDates(now.In(c.loc), c.windowDays, c.closed)
}

// Slots ordered daily slots
func (c *Catalog) Slots() []domain.TimeSlot {
	return BaseTimeSlots()
}

// Today midnight of now's day in the studio timezone
func (c *Catalog) Today(now time.Time) time.Time {
	return startOfDay(now.In(c.loc))
}

// ParseDate parses YYYY-MM-DD as a day in the studio timezone
func (c *Catalog) ParseDate(s string) (time.Time, error) {
	day, err := time.ParseInLocation(domain.DateFormat, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return day, nil
}

// CheckDate checks that day is one of Dates(now)
func (c *Catalog) CheckDate(day, now time.Time) error {
	day = startOfDay(day.In(c.loc))
	today := c.Today(now)

	if day.Before(today) {
		return ErrDateInPast
	}
	if day.Weekday() == c.closed {
		return ErrDateClosed
	}
	dates := c.Dates(now)
	last, err := time.ParseInLocation(domain.DateFormat, dates[len(dates)-1].Date, c.loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if day.After(last) {
		return ErrDateOutOfWindow
	}
	return nil
}

// IsTooSoon reports whether the slot on day starts less than MinLead after now.
// Only slots of the current day can be too soon.
func (c *Catalog) IsTooSoon(day time.Time, slotID string, now time.Time) bool {
	now = now.In(c.loc)
	if !sameDay(day.In(c.loc), now) {
		return false
	}
	start, err := StartOf(day.In(c.loc), slotID)
	if err != nil {
		return false
	}
	return start.Sub(now) < c.minLead
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
