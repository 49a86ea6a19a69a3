package start_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_payment: invalid input data")

	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("start_payment: reservation not found")

	// ErrReservationCancelled отменённое бронирование нельзя оплатить
	ErrReservationCancelled = errors.New("start_payment: reservation is cancelled")

	// ErrPaymentUnavailable платёжный бэкенд не вернул ссылку
	ErrPaymentUnavailable = errors.New("start_payment: payment provider unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_payment: internal error")
)
