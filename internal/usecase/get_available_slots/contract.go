package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// SlotsCache кеш занятых слотов по дате (YYYY-MM-DD)
type SlotsCache interface {
	Get(ctx context.Context, date string) ([]string, bool)
	Version(ctx context.Context, date string) int64
	Set(ctx context.Context, date string, version int64, slotIDs []string)
}

// Metrics счётчики резолвера доступности
type Metrics interface {
	AvailabilityFallback()
	CacheLookup(hit bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
