package rates

import "errors"

var (
	// ErrRatesNotFound возвращается, когда тарифы ещё не сохранены
	ErrRatesNotFound = errors.New("rates.repository: rates not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rates.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rates.repository: failed to execute query")
)
