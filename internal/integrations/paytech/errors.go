package paytech

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paytech client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paytech client: invalid response")

	// ErrPaymentRejected сервис ответил без ссылки на оплату
	ErrPaymentRejected = errors.New("paytech client: payment rejected")
)
