package rates

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// RatesRepository интерфейс репозитория тарифов
type RatesRepository interface {
	Get(ctx context.Context) (*domain.Rates, error)
	Upsert(ctx context.Context, rates *domain.Rates) (*domain.Rates, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
