package update_selection

import "errors"

var (
	// ErrInvalidState присланное состояние противоречиво
	ErrInvalidState = errors.New("update_selection: invalid selection state")

	// ErrInvalidAction неизвестное действие или действие не подходит к типу услуги
	ErrInvalidAction = errors.New("update_selection: invalid action")

	// ErrDateRequired слот выбирается до выбора даты
	ErrDateRequired = errors.New("update_selection: date must be selected first")

	// ErrInvalidDate дата недоступна для бронирования
	ErrInvalidDate = errors.New("update_selection: invalid date")

	// ErrSlotNotAvailable слот занят или уже слишком поздно
	ErrSlotNotAvailable = errors.New("update_selection: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_selection: internal error")
)
