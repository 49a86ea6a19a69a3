package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateInPast возвращается для дат раньше сегодняшней
	ErrDateInPast = errors.New("get_available_slots: date is in the past")

	// ErrStudioClosed возвращается для закрытого дня недели
	ErrStudioClosed = errors.New("get_available_slots: studio is closed on this date")

	// ErrDateTooFarInFuture возвращается для дат за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")
)
