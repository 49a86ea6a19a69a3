package auth

import "errors"

var (
	// ErrInvalidCredentials неверный логин или пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUnauthenticated нет сессии, подпись не сходится или сессия истекла
	ErrUnauthenticated = errors.New("auth: unauthenticated")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
