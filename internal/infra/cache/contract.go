package cache

import (
	"context"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Clock источник времени для истечения TTL
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SlotsCache кеш занятых слотов по дате (YYYY-MM-DD).
// Version читается до запроса в хранилище; Set пропускает запись,
// если с тех пор дату инвалидировали
type SlotsCache interface {
	Get(ctx context.Context, date string) ([]string, bool)
	Version(ctx context.Context, date string) int64
	Set(ctx context.Context, date string, version int64, slotIDs []string)
	Invalidate(ctx context.Context, date string)
}

var (
	_ SlotsCache = (*Memory)(nil)
	_ SlotsCache = (*Redis)(nil)
	_ SlotsCache = Noop{}
)
