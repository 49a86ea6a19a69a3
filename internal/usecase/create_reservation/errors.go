package create_reservation

import (
	"errors"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrSelectionMissing не выбраны дата или слоты
	ErrSelectionMissing = domain.ErrSelectionMissing

	// ErrTitlesMissing не выбрано ни одного титра
	ErrTitlesMissing = domain.ErrTitlesMissing

	// ErrContactMissing не заполнены обязательные поля формы
	ErrContactMissing = domain.ErrContactMissing

	// ErrInvalidServiceType неизвестный тип услуги
	ErrInvalidServiceType = errors.New("create_reservation: invalid service type")

	// ErrInvalidTimeSlot неизвестный слот или слоты идут не подряд
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrInvalidTitleCount количество титров вне диапазона
	ErrInvalidTitleCount = errors.New("create_reservation: invalid title count")

	// ErrInvalidDate некорректная дата или дата в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrStudioClosed студия закрыта в выбранный день
	ErrStudioClosed = errors.New("create_reservation: studio is closed on this date")

	// ErrDateTooFarInFuture дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrSlotNotAvailable один из слотов уже занят
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrTooLateToBook до начала слота осталось меньше минимального запаса
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
