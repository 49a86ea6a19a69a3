package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// UseCase use case для получения статусов слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	cache           SlotsCache
	catalog         *catalog.Catalog
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	cache SlotsCache,
	cat *catalog.Catalog,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		cache:           cache,
		catalog:         cat,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает слоты даты со статусами available или booked.
// Слоты, до начала которых осталось меньше минимального запаса, не возвращаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Валидация даты
	day, err := parseAndCheckDate(uc.catalog, req.Date, now)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: date=%q rejected: %v", req.Date, err)
		return nil, err
	}

	// 2. Занятые слоты (с кешем, fail-open)
	booked, degraded := uc.GetBookedSlotIDs(ctx, day)

	// 3. Статусы, too_soon отбрасываем
	resp := &Response{
		Date:     req.Date,
		Slots:    make([]domain.SlotWithStatus, 0),
		Degraded: degraded,
	}
	for _, slot := range ResolveSlotStatuses(uc.catalog, day, booked, now) {
		if slot.Status == domain.SlotTooSoon {
			continue
		}
		resp.Slots = append(resp.Slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, booked=%d, returned=%d, degraded=%t",
		req.Date, len(booked), len(resp.Slots), degraded)
	return resp, nil
}

// GetBookedSlotIDs занятые слоты даты. При ошибке хранилища возвращает
// пустой набор и degraded=true; такой результат не кешируется.
func (uc *UseCase) GetBookedSlotIDs(ctx context.Context, day time.Time) (ids []string, degraded bool) {
	key := day.Format(domain.DateFormat)

	if cached, ok := uc.cache.Get(ctx, key); ok {
		uc.metrics.CacheLookup(true)
		return cached, false
	}
	uc.metrics.CacheLookup(false)

	// поколение фиксируется до чтения хранилища
	version := uc.cache.Version(ctx, key)
	reservations, err := uc.reservationRepo.ListByDate(ctx, day)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to load reservations for %s, serving all slots as free: %v", key, err)
		uc.metrics.AvailabilityFallback()
		return []string{}, true
	}

	ids = domain.BookedSlotIDs(reservations)
	uc.cache.Set(ctx, key, version, ids)
	return ids, false
}
